/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package requirement

import (
	"fmt"
	"strings"
)

// Requirement is one node of a normalized requirement tree. The set of
// implementations is closed: Equality, Predicate, Approximate, Set,
// Sequence and Mapping. Consumers dispatch exhaustively on these six
// variants.
type Requirement interface {
	fmt.Stringer

	// sealed prevents implementations outside this package.
	sealed()
}

// Absent is the explicit marker for "no value". A requirement for absence
// matches only Absent (or an untyped nil observed value), never zero or
// the empty string.
var Absent = absence{}

type absence struct{}

func (absence) String() string { return "<absent>" }

// Equality requires an observed element to equal Value.
type Equality struct {
	// Value is the literal the observed element must equal. Numeric
	// values compare across Go numeric types, so int(5) equals
	// float64(5). NaN equals nothing, itself included.
	Value any
}

func (Equality) sealed() {}

func (e Equality) String() string { return display(e.Value) }

// Predicate requires an observed element to satisfy Test.
type Predicate struct {
	// Test reports whether an observed element is acceptable. A Test
	// that panics counts as a non-match.
	Test func(v any) bool

	// Desc is a stable human description of the test, used as the
	// expected side of invalid differences (e.g. "/[a-z]+/" for a
	// regexp, "int" for a type check).
	Desc string
}

func (Predicate) sealed() {}

func (p Predicate) String() string { return p.Desc }

// Approximate requires an observed number to lie within Tolerance of
// Expected. The boundary is inclusive: a delta of exactly Tolerance
// passes.
type Approximate struct {
	Expected  float64
	Tolerance float64
}

func (Approximate) sealed() {}

func (a Approximate) String() string {
	return fmt.Sprintf("%v ± %v", a.Expected, a.Tolerance)
}

// Set requires unordered membership: every observed element must match
// exactly one member, and every member must be matched by exactly one
// observed element. Members are kept in a deterministic declared order.
type Set struct {
	Members []Requirement
}

func (Set) sealed() {}

func (s Set) String() string {
	parts := make([]string, len(s.Members))
	for i, m := range s.Members {
		parts[i] = m.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Sequence requires an order-sensitive, position-aligned match.
type Sequence struct {
	Items []Requirement
}

func (Sequence) sealed() {}

func (s Sequence) String() string {
	parts := make([]string, len(s.Items))
	for i, it := range s.Items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Mapping partitions data into groups keyed by Entry.Key. Entries are
// sorted by key (see CompareKeys) at normalization time so that group
// iteration is deterministic.
type Mapping struct {
	Entries []Entry
}

// Entry pairs a group key with the sub-requirement for that group.
type Entry struct {
	Key         any
	Requirement Requirement
}

func (Mapping) sealed() {}

func (m Mapping) String() string {
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		parts[i] = fmt.Sprintf("%v: %s", e.Key, e.Requirement)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// display renders a literal for messages, quoting strings so that "" and
// absence stay distinguishable.
func display(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	default:
		return fmt.Sprintf("%v", v)
	}
}
