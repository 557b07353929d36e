/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package diff

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/datacheck/datacheck/pkg/requirement"
)

// DiffGroups compares grouped observed data against a Mapping
// requirement and tags every resulting difference with its group key.
//
// The union of requirement and observed keys is walked in ascending key
// order. A key present on both sides recurses into Diff; a key present
// only in the requirement expands into missings for every element the
// sub-requirement implies; a key present only in the observed data
// expands into extras for every element in that group. A one-sided key
// is data, not an error.
func DiffGroups(req requirement.Mapping, observed any) ([]Difference, error) {
	groups, ok := asGroups(observed)
	if !ok {
		return nil, fmt.Errorf("%w: mapping requirement against %T", ErrShapeMismatch, observed)
	}

	// Entries are sorted at normalization time; hand-built mappings may
	// not be, so order a local view before merging.
	entries := make([]requirement.Entry, len(req.Entries))
	copy(entries, req.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return requirement.CompareKeys(entries[i].Key, entries[j].Key) < 0
	})

	var diffs []Difference
	ei, gi := 0, 0
	for ei < len(entries) || gi < len(groups) {
		switch {
		case gi >= len(groups) || (ei < len(entries) && requirement.CompareKeys(entries[ei].Key, groups[gi].key) < 0):
			entry := entries[ei]
			diffs = append(diffs, tagged(entry.Key, missingFor(entry.Requirement))...)
			ei++
		case ei >= len(entries) || requirement.CompareKeys(groups[gi].key, entries[ei].Key) < 0:
			g := groups[gi]
			diffs = append(diffs, tagged(g.key, extrasFor(g.value))...)
			gi++
		default:
			sub, err := Diff(entries[ei].Requirement, groups[gi].value)
			if err != nil {
				return nil, fmt.Errorf("group %v: %w", entries[ei].Key, err)
			}
			diffs = append(diffs, tagged(entries[ei].Key, sub)...)
			ei++
			gi++
		}
	}
	return diffs, nil
}

// tagged stamps the group key onto differences. Differences already
// tagged by a nested group get a dotted key path, outermost first.
func tagged(key any, diffs []Difference) []Difference {
	for i := range diffs {
		if diffs[i].Group == nil {
			diffs[i].Group = key
		} else {
			diffs[i].Group = fmt.Sprintf("%v.%v", key, diffs[i].Group)
		}
	}
	return diffs
}

// missingFor expands a sub-requirement into the missings implied by a
// group with no observed data.
func missingFor(req requirement.Requirement) []Difference {
	switch r := req.(type) {
	case requirement.Equality:
		// A required absence is satisfied by a missing group.
		if requirement.IsAbsent(r.Value) {
			return nil
		}
		return []Difference{Missing(r.Value)}
	case requirement.Approximate:
		return []Difference{Missing(r.Expected)}
	case requirement.Set:
		diffs := make([]Difference, len(r.Members))
		for i, m := range r.Members {
			diffs[i] = Missing(expectedOf(m))
		}
		return diffs
	case requirement.Sequence:
		diffs := make([]Difference, len(r.Items))
		for i, it := range r.Items {
			diffs[i] = Missing(expectedOf(it))
		}
		return diffs
	case requirement.Mapping:
		var diffs []Difference
		for _, entry := range r.Entries {
			diffs = append(diffs, tagged(entry.Key, missingFor(entry.Requirement))...)
		}
		return diffs
	default:
		return []Difference{Missing(expectedOf(req))}
	}
}

// extrasFor expands an observed group with no requirement into extras.
func extrasFor(value any) []Difference {
	if elems, ok := asCollection(value); ok {
		diffs := make([]Difference, len(elems))
		for i, elem := range elems {
			diffs[i] = Extra(elem)
		}
		return diffs
	}
	if groups, ok := asGroups(value); ok {
		var diffs []Difference
		for _, g := range groups {
			diffs = append(diffs, tagged(g.key, extrasFor(g.value))...)
		}
		return diffs
	}
	return []Difference{Extra(value)}
}

type group struct {
	key   any
	value any
}

// asGroups canonicalizes any map kind into group entries sorted by key.
func asGroups(observed any) ([]group, bool) {
	rv := reflect.ValueOf(observed)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, false
	}
	groups := make([]group, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		groups = append(groups, group{key: iter.Key().Interface(), value: iter.Value().Interface()})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return requirement.CompareKeys(groups[i].key, groups[j].key) < 0
	})
	return groups, true
}
