/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package version exposes build version information.
package version

var (
	// overridden during build with ldflags, e.g.
	// -X "github.com/datacheck/datacheck/pkg/version.Version=1.0.0"
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
