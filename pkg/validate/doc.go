/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package validate is the top-level entry point for data validation.
//
// Validate normalizes a raw requirement, drives the differ (or the group
// comparator when the requirement is grouped), and aggregates every
// difference into a single Failure report. A nil Failure is success.
//
// Basic usage:
//
//	v := validate.New()
//	failure, err := v.Validate(observed, rawRequirement)
//	if err != nil {
//	    // malformed requirement or shape mismatch: a usage error
//	}
//	if failure != nil {
//	    fmt.Println(failure.Render())
//	}
//
// Validation is pure: it never logs, performs I/O, or mutates its
// inputs, and two calls with identical inputs produce identical reports.
package validate
