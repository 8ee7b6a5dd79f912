// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log/slog"

	"github.com/codetrail-dev/codetrail/daemons"
	"github.com/codetrail-dev/codetrail/database/repositories"
	"github.com/codetrail-dev/codetrail/rules"
	"github.com/codetrail-dev/codetrail/services"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/spf13/cobra"
)

func NewRulesCommand() *cobra.Command {
	rulesCmd := cobra.Command{
		Use:   "rules",
		Short: "Manage rule repositories",
	}

	rulesCmd.AddCommand(newRulesSyncCommand())
	rulesCmd.AddCommand(newRulesCloneCommand())
	rulesCmd.AddCommand(newRulesPullCommand())
	return &rulesCmd
}

func ruleServiceFactory(db shared.DB) shared.RuleService {
	ruleRepositoryRepository := repositories.NewRuleRepositoryRepository(db)
	synchronizer := rules.NewSynchronizer(
		repositories.NewRuleRepo(db),
		repositories.NewSupportedLanguageRepository(db),
	)
	return services.NewRuleService(ruleRepositoryRepository, synchronizer, rules.NewCloner())
}

func newRulesSyncCommand() *cobra.Command {
	sync := cobra.Command{
		Use:   "sync",
		Short: "Will pull and re-import every registered rule repository",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			ruleRepositoryRepository := repositories.NewRuleRepositoryRepository(db)
			return daemons.SyncRuleRepositories(cmd.Context(), ruleRepositoryRepository, ruleServiceFactory(db))
		},
	}

	return &sync
}

func newRulesCloneCommand() *cobra.Command {
	clone := cobra.Command{
		Use:   "clone <name>",
		Short: "Will clone the checkout of a registered rule repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			repo, err := repositories.NewRuleRepositoryRepository(db).ReadByName(args[0])
			if err != nil {
				slog.Error("could not find rule repository", "name", args[0], "err", err)
				return err
			}

			return ruleServiceFactory(db).CloneRepository(cmd.Context(), repo)
		},
	}

	return &clone
}

func newRulesPullCommand() *cobra.Command {
	pull := cobra.Command{
		Use:   "pull <name>",
		Short: "Will update the checkout of a registered rule repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			repo, err := repositories.NewRuleRepositoryRepository(db).ReadByName(args[0])
			if err != nil {
				slog.Error("could not find rule repository", "name", args[0], "err", err)
				return err
			}

			return ruleServiceFactory(db).PullRepository(cmd.Context(), repo)
		},
	}

	return &pull
}
