// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package risk

import "github.com/codetrail-dev/codetrail/database/models"

// base level by the highest vulnerability severity present
var severityBaseLevel = map[models.Severity]int{
	models.SeverityCritical: 75,
	models.SeverityHigh:     60,
	models.SeverityMedium:   40,
	models.SeverityLow:      20,
}

// adjustment by the highest vulnerable-dependency severity present
var severityAdjustment = map[models.Severity]int{
	models.SeverityCritical: 10,
	models.SeverityHigh:     8,
	models.SeverityMedium:   5,
	models.SeverityLow:      2,
}

// Level computes the risk level of a project from its analysis and lines
// count. The level is derived from the severity of the SAST findings and
// adjusted by the severity of the SCA findings.
//
// Without an analysis, or without a strictly positive code-line count, the
// level is 0: an empty or never-scanned codebase carries no scoreable risk.
// The maximum reachable value is 85 (critical vulnerability plus critical
// dependency), so the result needs no clamping to stay within [0, 100].
func Level(analysis *models.Analysis, linesCount *models.ProjectLinesCount) int {
	if analysis == nil {
		return 0
	}
	if linesCount == nil || linesCount.TotalCodeCount <= 0 {
		return 0
	}

	level := 0
	for _, severity := range models.SeveritiesDescending {
		if hasVulnWithSeverity(analysis, severity) {
			level = severityBaseLevel[severity]
			break
		}
	}
	for _, severity := range models.SeveritiesDescending {
		if hasVulnDepWithSeverity(analysis, severity) {
			level += severityAdjustment[severity]
			break
		}
	}
	return level
}

func hasVulnWithSeverity(analysis *models.Analysis, severity models.Severity) bool {
	for _, vuln := range analysis.Vulnerabilities {
		if vuln.Severity == severity {
			return true
		}
	}
	return false
}

func hasVulnDepWithSeverity(analysis *models.Analysis, severity models.Severity) bool {
	for _, dep := range analysis.VulnerableDependencies {
		if dep.Severity == severity {
			return true
		}
	}
	return false
}

// CountOccurrences returns the total number of vulnerability occurrences
// recorded in the analysis.
func CountOccurrences(analysis *models.Analysis) int {
	if analysis == nil {
		return 0
	}
	count := 0
	for _, vuln := range analysis.Vulnerabilities {
		count += len(vuln.Occurrences)
	}
	return count
}
