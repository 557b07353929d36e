/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package diff

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/datacheck/datacheck/pkg/requirement"
)

// ErrShapeMismatch indicates that a requirement and the observed data
// have structurally incompatible shapes. It aborts the comparison; no
// partial difference sequence is returned.
var ErrShapeMismatch = errors.New("shape mismatch")

// Diff computes the ordered differences between observed data and one
// requirement node.
//
// Equality, Predicate and Approximate expect a scalar; Set and Sequence
// expect an ordered collection; Mapping expects grouped data and is
// delegated to DiffGroups. An empty result means the data conforms.
func Diff(req requirement.Requirement, observed any) ([]Difference, error) {
	switch r := req.(type) {
	case requirement.Equality:
		return diffScalar(r, observed)
	case requirement.Predicate:
		return diffScalar(r, observed)
	case requirement.Approximate:
		return diffApproximate(r, observed)
	case requirement.Set:
		return diffSet(r, observed)
	case requirement.Sequence:
		return diffSequence(r, observed)
	case requirement.Mapping:
		return DiffGroups(r, observed)
	default:
		return nil, fmt.Errorf("unknown requirement variant %T", req)
	}
}

// diffScalar compares a scalar observed value against an Equality or
// Predicate atom, yielding zero or one difference.
func diffScalar(req requirement.Requirement, observed any) ([]Difference, error) {
	if !isScalar(observed) {
		return nil, fmt.Errorf("%w: %s requirement against %T", ErrShapeMismatch, variantName(req), observed)
	}

	switch r := req.(type) {
	case requirement.Equality:
		if r.Matches(observed) {
			return nil, nil
		}
		if requirement.IsAbsent(observed) {
			return []Difference{Missing(r.Value)}, nil
		}
		if requirement.IsAbsent(r.Value) {
			return []Difference{Extra(observed)}, nil
		}
		return []Difference{Invalid(observed, r.Value)}, nil
	case requirement.Predicate:
		if requirement.IsAbsent(observed) {
			return []Difference{Missing(description(r.Desc))}, nil
		}
		if r.Matches(observed) {
			return nil, nil
		}
		return []Difference{Invalid(observed, description(r.Desc))}, nil
	}
	return nil, fmt.Errorf("unknown scalar requirement variant %T", req)
}

// diffSequence compares ordered collections position by position. There
// is no alignment search: the same elements in a different order are
// invalid, and length mismatches surface as missing or extra tails.
func diffSequence(req requirement.Sequence, observed any) ([]Difference, error) {
	elems, ok := asCollection(observed)
	if !ok {
		return nil, fmt.Errorf("%w: sequence requirement against %T", ErrShapeMismatch, observed)
	}

	var diffs []Difference
	shorter := min(len(req.Items), len(elems))
	for i := 0; i < shorter; i++ {
		sub, err := diffItem(req.Items[i], elems[i])
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, sub...)
	}
	for _, item := range req.Items[shorter:] {
		diffs = append(diffs, Missing(expectedOf(item)))
	}
	for _, elem := range elems[shorter:] {
		diffs = append(diffs, Extra(elem))
	}
	return diffs, nil
}

// diffItem compares one positional element. Atomic items report through
// their own diff so approximate items still yield deviations; structural
// items that cannot even be shape-matched collapse to a single invalid.
func diffItem(item requirement.Requirement, elem any) ([]Difference, error) {
	sub, err := Diff(item, elem)
	if errors.Is(err, ErrShapeMismatch) {
		return []Difference{Invalid(elem, expectedOf(item))}, nil
	}
	return sub, err
}

// atomMatches reports whether one observed element satisfies a set
// member. Structural members match when their own diff comes back empty.
func atomMatches(member requirement.Requirement, elem any) bool {
	switch m := member.(type) {
	case requirement.Equality:
		return m.Matches(elem)
	case requirement.Predicate:
		return m.Matches(elem)
	case requirement.Approximate:
		return m.Matches(elem)
	default:
		sub, err := Diff(member, elem)
		return err == nil && len(sub) == 0
	}
}

// expectedOf renders the expected side of a difference for a requirement
// node: the literal for equalities, the description for predicates, and
// the display form for structural variants.
func expectedOf(req requirement.Requirement) any {
	switch r := req.(type) {
	case requirement.Equality:
		return r.Value
	case requirement.Predicate:
		return description(r.Desc)
	case requirement.Approximate:
		return description(r.String())
	default:
		return description(req.String())
	}
}

// description marks an Expected value that describes a requirement
// rather than carrying a literal; it renders unquoted.
type description string

func (d description) String() string { return string(d) }

func variantName(req requirement.Requirement) string {
	switch req.(type) {
	case requirement.Equality:
		return "equality"
	case requirement.Predicate:
		return "predicate"
	case requirement.Approximate:
		return "approximate"
	case requirement.Set:
		return "set"
	case requirement.Sequence:
		return "sequence"
	case requirement.Mapping:
		return "mapping"
	}
	return "unknown"
}

// isScalar reports whether observed is one of the engine's scalar
// shapes. Strings and []byte are atoms, not collections.
func isScalar(observed any) bool {
	switch observed.(type) {
	case nil, string, []byte:
		return true
	}
	switch reflect.ValueOf(observed).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return false
	}
	return true
}

// asCollection canonicalizes any slice or array kind (except strings and
// []byte) into an ordered []any collection.
func asCollection(observed any) ([]any, bool) {
	switch observed.(type) {
	case nil, string, []byte:
		return nil, false
	case []any:
		return observed.([]any), true
	}
	rv := reflect.ValueOf(observed)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}
