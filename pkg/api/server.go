/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package api assembles and runs the datacheck API server.
package api

import (
	"context"
	"log/slog"

	"github.com/datacheck/datacheck/pkg/logging"
	"github.com/datacheck/datacheck/pkg/server"
	"github.com/datacheck/datacheck/pkg/version"
)

const name = "datacheck-api-server"

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version.Version)
	slog.Info("starting",
		"name", name,
		"version", version.Version,
		"commit", version.Commit,
		"date", version.Date,
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version.Version),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
