// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package daemons

import (
	"log/slog"

	"github.com/codetrail-dev/codetrail/monitoring"
	"github.com/codetrail-dev/codetrail/shared"
)

// RecalculateRiskMetrics publishes the current risk level of every project
// as a prometheus gauge. A failing project is logged and skipped.
func RecalculateRiskMetrics(projectRepository shared.ProjectRepository, projectService shared.ProjectService) error {
	projects, err := projectRepository.All()
	if err != nil {
		return err
	}

	monitoring.RiskRecalculationAmount.Inc()
	for _, project := range projects {
		level, err := projectService.RiskLevel(project.ID)
		if err != nil {
			slog.Error("could not recalculate risk level", "project", project.Slug, "err", err)
			continue
		}
		monitoring.ProjectRiskLevel.WithLabelValues(project.Slug).Set(float64(level))
	}
	return nil
}
