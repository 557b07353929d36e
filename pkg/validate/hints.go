/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/datacheck/datacheck/pkg/diff"
	"github.com/datacheck/datacheck/pkg/requirement"
)

// nearMatchHints pairs missing and extra string values from the same
// group that sit within a small edit distance of each other. Such pairs
// are usually typos or stale spellings rather than genuinely missing
// data, and the hint points the reader at them.
//
// Each missing value claims at most one extra (the closest unclaimed
// one, earliest on ties), so hints are deterministic.
func nearMatchHints(diffs []diff.Difference) []string {
	type candidate struct {
		value string
		group any
	}
	var missing, extra []candidate
	for _, d := range diffs {
		switch d.Kind {
		case diff.KindMissing:
			if s, ok := d.Expected.(string); ok {
				missing = append(missing, candidate{value: s, group: d.Group})
			}
		case diff.KindExtra:
			if s, ok := d.Observed.(string); ok {
				extra = append(extra, candidate{value: s, group: d.Group})
			}
		}
	}
	if len(missing) == 0 || len(extra) == 0 {
		return nil
	}

	var hints []string
	claimed := make([]bool, len(extra))
	for _, want := range missing {
		best, bestDist := -1, 0
		for i, got := range extra {
			if claimed[i] || requirement.CompareKeys(got.group, want.group) != 0 {
				continue
			}
			dist := levenshtein.ComputeDistance(got.value, want.value)
			if dist > nearMatchLimit(got.value, want.value) {
				continue
			}
			if best < 0 || dist < bestDist {
				best, bestDist = i, dist
			}
		}
		if best >= 0 {
			claimed[best] = true
			hints = append(hints, fmt.Sprintf("possible near match: got %q, want %q", extra[best].value, want.value))
		}
	}
	return hints
}

// nearMatchLimit scales the acceptable edit distance with value length:
// short values tolerate one edit, longer ones up to half their length,
// which is enough to catch transposed characters without pairing
// unrelated values.
func nearMatchLimit(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n <= 3 {
		return 1
	}
	return n / 2
}
