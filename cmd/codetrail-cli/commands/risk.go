// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log/slog"

	"github.com/codetrail-dev/codetrail/daemons"
	"github.com/codetrail-dev/codetrail/database/repositories"
	"github.com/codetrail-dev/codetrail/linecount"
	"github.com/codetrail-dev/codetrail/services"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/codetrail-dev/codetrail/utils"
	"github.com/spf13/cobra"
)

func NewRiskCommand() *cobra.Command {
	riskCmd := cobra.Command{
		Use:   "risk",
		Short: "Risk assessment",
	}

	riskCmd.AddCommand(newRecalculateCmd())
	return &riskCmd
}

func newRecalculateCmd() *cobra.Command {
	recalculate := cobra.Command{
		Use:   "recalculate",
		Short: "Will recalculate the risk level metric for all projects",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			projectRepository := repositories.NewProjectRepository(db)
			scanService := services.NewScanService(
				repositories.NewAnalysisRepository(db),
				repositories.NewLinesCountRepository(db),
				linecount.NewRunner(),
				utils.NewSyncFireAndForgetSynchronizer(),
			)
			projectService := services.NewProjectService(projectRepository, scanService)

			return daemons.RecalculateRiskMetrics(projectRepository, projectService)
		},
	}

	return &recalculate
}
