/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/datacheck/datacheck/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the validation API server",
	Long: `Run the HTTP validation API server.

The server exposes POST /v1/validate for validating observed data
against a requirement (plain JSON shape or a YAML requirement document),
plus /health, /ready and /metrics endpoints.

Listen port and log level come from the PORT and LOG_LEVEL environment
variables.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return api.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
