// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"log/slog"
	"os"

	"github.com/codetrail-dev/codetrail/cmd/codetrail-cli/commands"
	"github.com/codetrail-dev/codetrail/shared"
)

func Execute() {
	err := commands.GetRootCmd().Execute()
	if err != nil {
		slog.Error("Error executing command", "err", err)
		os.Exit(1)
	}
}

func init() {
	commands.GetRootCmd().AddCommand(commands.NewMigrateCommand())
	commands.GetRootCmd().AddCommand(commands.NewRulesCommand())
	commands.GetRootCmd().AddCommand(commands.NewRiskCommand())
}

func main() {
	shared.InitLogger()
	Execute()
}
