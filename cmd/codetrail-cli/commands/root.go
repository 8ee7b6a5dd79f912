// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codetrail-cli",
	Short: "Management cli",
	Long:  `The codetrail cli can be used to manage a codetrail instance without going through the API.`,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}
