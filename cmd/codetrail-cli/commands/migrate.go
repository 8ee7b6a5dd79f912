// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log/slog"

	"github.com/codetrail-dev/codetrail/database"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Will run all pending database migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			if err := database.RunMigrationsWithDB(db); err != nil {
				slog.Error("failed to run database migrations", "err", err)
				return err
			}

			slog.Info("database migrations finished")
			return nil
		},
	}

	return &migrate
}
