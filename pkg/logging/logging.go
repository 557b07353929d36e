/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// SetDefaultStructuredLogger installs a JSON slog handler as the default
// logger, annotated with the service name and version. The level comes
// from LOG_LEVEL (debug, info, warn, error) and defaults to info.
func SetDefaultStructuredLogger(name, version string) {
	level := slog.LevelInfo
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(s)); err == nil {
			level = parsed
		}
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).With("name", name, "version", version))
}
