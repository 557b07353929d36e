/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/datacheck/datacheck/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
