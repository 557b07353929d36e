/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package requirement

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
)

// ErrMalformed indicates a raw requirement that cannot be normalized.
// It is a usage error, distinct from a validation failure, and is never
// accompanied by a partially built Requirement.
var ErrMalformed = errors.New("malformed requirement")

// Approx annotates a numeric expectation with an absolute tolerance.
// Normalize converts it into an Approximate requirement; a negative or
// NaN tolerance is malformed.
type Approx struct {
	Value     any
	Tolerance float64
}

// Normalize converts a raw requirement into a Requirement tree.
//
// Dispatch is by shape: an existing Requirement passes through, Approx
// becomes Approximate, a func(any) bool becomes a Predicate, a compiled
// *regexp.Regexp becomes a full-match Predicate, a reflect.Type becomes
// an instance-of Predicate, maps with struct{} values become Sets, other
// maps become Mappings with recursively normalized values, slices and
// arrays (except strings and []byte, which are atoms) become Sequences,
// and anything left is an Equality literal.
func Normalize(raw any) (Requirement, error) {
	switch r := raw.(type) {
	case nil:
		return Equality{Value: Absent}, nil
	case absence:
		return Equality{Value: Absent}, nil
	case Requirement:
		return r, nil
	case Approx:
		return normalizeApprox(r)
	case func(any) bool:
		return funcMatcher(r), nil
	case *regexp.Regexp:
		return regexMatcher(r), nil
	case reflect.Type:
		return typeMatcher(r), nil
	case string, []byte:
		return Equality{Value: r}, nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return normalizeSequence(rv)
	case reflect.Map:
		if rv.Type().Elem() == reflect.TypeOf(struct{}{}) {
			return normalizeSet(rv)
		}
		return normalizeMapping(rv)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, fmt.Errorf("%w: %T is not a usable requirement", ErrMalformed, raw)
	}

	return Equality{Value: raw}, nil
}

// MustNormalize is Normalize for statically known-good requirements,
// typically in tests and examples. It panics on error.
func MustNormalize(raw any) Requirement {
	req, err := Normalize(raw)
	if err != nil {
		panic(err)
	}
	return req
}

func normalizeApprox(a Approx) (Requirement, error) {
	f, ok := Number(a.Value)
	if !ok || math.IsNaN(f) {
		return nil, fmt.Errorf("%w: approx value %v is not numeric", ErrMalformed, a.Value)
	}
	if a.Tolerance < 0 || math.IsNaN(a.Tolerance) {
		return nil, fmt.Errorf("%w: tolerance %v must be non-negative", ErrMalformed, a.Tolerance)
	}
	return Approximate{Expected: f, Tolerance: a.Tolerance}, nil
}

func normalizeSequence(rv reflect.Value) (Requirement, error) {
	items := make([]Requirement, rv.Len())
	for i := range items {
		item, err := Normalize(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items[i] = item
	}
	return Sequence{Items: items}, nil
}

// normalizeSet turns a map[K]struct{} into a Set. Map iteration order is
// randomized, so members are sorted by key to fix a declared order.
func normalizeSet(rv reflect.Value) (Requirement, error) {
	raws := make([]any, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		raws = append(raws, k.Interface())
	}
	sort.SliceStable(raws, func(i, j int) bool {
		return CompareKeys(raws[i], raws[j]) < 0
	})

	members := make([]Requirement, len(raws))
	for i, raw := range raws {
		m, err := Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("set member %v: %w", raw, err)
		}
		members[i] = m
	}
	return Set{Members: members}, nil
}

func normalizeMapping(rv reflect.Value) (Requirement, error) {
	keys := make([]any, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.Interface())
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return CompareKeys(keys[i], keys[j]) < 0
	})

	entries := make([]Entry, len(keys))
	for i, key := range keys {
		value := rv.MapIndex(reflect.ValueOf(key)).Interface()
		sub, err := Normalize(value)
		if err != nil {
			return nil, fmt.Errorf("entry %v: %w", key, err)
		}
		entries[i] = Entry{Key: key, Requirement: sub}
	}
	return Mapping{Entries: entries}, nil
}
