/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datacheck/datacheck/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "datacheck",
	Short: "Validate datasets against declarative requirements",
	Long: `datacheck validates in-memory datasets against declarative requirements
and reports precisely how the data deviates: missing elements, extra
elements, invalid values and numeric deviations.

The serve subcommand hosts the validation engine behind an HTTP API.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.Date),
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	return rootCmd.Execute()
}
