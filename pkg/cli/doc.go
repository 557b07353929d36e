/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli defines the datacheck command line interface.
package cli
