/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"math"

	"github.com/datacheck/datacheck/pkg/diff"
	"github.com/datacheck/datacheck/pkg/requirement"
)

// Validator validates observed data against declarative requirements.
// The zero value is usable; New applies options.
type Validator struct {
	defaultTolerance float64
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithDefaultTolerance returns an Option under which numeric equality
// requirements compare within the given absolute tolerance instead of
// exactly. Zero keeps exact comparison.
func WithDefaultTolerance(tolerance float64) Option {
	return func(v *Validator) {
		v.defaultTolerance = tolerance
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks observed data against a raw requirement.
//
// The returned Failure is nil when the data conforms. A non-nil Failure
// carries the complete ordered difference sequence; validation never
// stops at the first discrepancy. Errors are reserved for usage
// problems: requirement.ErrMalformed when the raw requirement cannot be
// normalized, diff.ErrShapeMismatch when requirement and data shapes are
// incompatible. On error no partial report is returned.
func (v *Validator) Validate(observed, raw any) (*Failure, error) {
	req, err := requirement.Normalize(raw)
	if err != nil {
		return nil, err
	}
	if v.defaultTolerance > 0 {
		req = withTolerance(req, v.defaultTolerance)
	}

	var diffs []diff.Difference
	switch r := req.(type) {
	case requirement.Mapping:
		diffs, err = diff.DiffGroups(r, observed)
	default:
		diffs, err = diff.Diff(req, observed)
	}
	if err != nil {
		return nil, err
	}
	if len(diffs) == 0 {
		return nil, nil
	}
	return NewFailure(diffs), nil
}

// Validate checks observed data against a raw requirement using a
// default Validator.
func Validate(observed, raw any) (*Failure, error) {
	return New().Validate(observed, raw)
}

// withTolerance rebuilds a requirement tree with numeric equalities
// promoted to approximates. The input tree is left untouched.
func withTolerance(req requirement.Requirement, tolerance float64) requirement.Requirement {
	switch r := req.(type) {
	case requirement.Equality:
		if f, ok := requirement.Number(r.Value); ok && !math.IsNaN(f) {
			return requirement.Approximate{Expected: f, Tolerance: tolerance}
		}
		return r
	case requirement.Set:
		members := make([]requirement.Requirement, len(r.Members))
		for i, m := range r.Members {
			members[i] = withTolerance(m, tolerance)
		}
		return requirement.Set{Members: members}
	case requirement.Sequence:
		items := make([]requirement.Requirement, len(r.Items))
		for i, it := range r.Items {
			items[i] = withTolerance(it, tolerance)
		}
		return requirement.Sequence{Items: items}
	case requirement.Mapping:
		entries := make([]requirement.Entry, len(r.Entries))
		for i, e := range r.Entries {
			entries[i] = requirement.Entry{Key: e.Key, Requirement: withTolerance(e.Requirement, tolerance)}
		}
		return requirement.Mapping{Entries: entries}
	default:
		return req
	}
}
