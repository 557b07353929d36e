/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"fmt"
	"strings"

	"github.com/datacheck/datacheck/pkg/diff"
)

// Counts summarizes a failure by difference kind.
type Counts struct {
	Missing   int `json:"missing" yaml:"missing"`
	Extra     int `json:"extra" yaml:"extra"`
	Invalid   int `json:"invalid" yaml:"invalid"`
	Deviation int `json:"deviation" yaml:"deviation"`
}

// Total returns the number of differences across all kinds.
func (c Counts) Total() int {
	return c.Missing + c.Extra + c.Invalid + c.Deviation
}

// Failure reports that observed data does not conform to a requirement.
// It is the expected outcome for non-conforming data, not a system
// error, and always carries the full ordered difference sequence.
type Failure struct {
	Differences []diff.Difference `json:"differences" yaml:"differences"`
	Counts      Counts            `json:"counts" yaml:"counts"`
}

// NewFailure builds a Failure from an ordered difference sequence.
func NewFailure(diffs []diff.Difference) *Failure {
	f := &Failure{Differences: diffs}
	for _, d := range diffs {
		switch d.Kind {
		case diff.KindMissing:
			f.Counts.Missing++
		case diff.KindExtra:
			f.Counts.Extra++
		case diff.KindInvalid:
			f.Counts.Invalid++
		case diff.KindDeviation:
			f.Counts.Deviation++
		}
	}
	return f
}

// Error summarizes the failure in one line, making *Failure usable as a
// test assertion error by host integrations.
func (f *Failure) Error() string {
	return fmt.Sprintf("validation failed: %d differences (missing=%d, extra=%d, invalid=%d, deviation=%d)",
		f.Counts.Total(), f.Counts.Missing, f.Counts.Extra, f.Counts.Invalid, f.Counts.Deviation)
}

// Render returns a stable multi-line rendering of the failure suitable
// for direct display: the summary line, one line per difference in
// order, and near-match hints when missing and extra string values are
// within a small edit distance of each other.
func (f *Failure) Render() string {
	var b strings.Builder
	b.WriteString(f.Error())
	for _, d := range f.Differences {
		b.WriteString("\n  ")
		b.WriteString(d.String())
	}
	for _, hint := range nearMatchHints(f.Differences) {
		b.WriteString("\n  ")
		b.WriteString(hint)
	}
	return b.String()
}
