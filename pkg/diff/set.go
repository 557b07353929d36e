/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package diff

import (
	"fmt"
	"math"

	"github.com/datacheck/datacheck/pkg/requirement"
)

// diffSet compares an observed collection against a Set requirement.
//
// Each member consumes at most one matching observed element, members
// taken in declared order and elements scanned in first-seen order (ties
// go to the first unconsumed element). Unconsumed elements come back as
// extras in first-seen order, then unmatched members as missings in
// declared order.
//
// The general path is O(n*m) because predicate members are not hashable;
// literal-only sets take a multiset fast path instead.
func diffSet(req requirement.Set, observed any) ([]Difference, error) {
	elems, ok := asCollection(observed)
	if !ok {
		return nil, fmt.Errorf("%w: set requirement against %T", ErrShapeMismatch, observed)
	}

	if diffs, ok := diffSetLiteral(req.Members, elems); ok {
		return diffs, nil
	}

	consumed := make([]bool, len(elems))
	matched := make([]bool, len(req.Members))
	for mi, member := range req.Members {
		for ei, elem := range elems {
			if consumed[ei] {
				continue
			}
			if atomMatches(member, elem) {
				consumed[ei] = true
				matched[mi] = true
				break
			}
		}
	}

	var diffs []Difference
	for ei, elem := range elems {
		if !consumed[ei] {
			diffs = append(diffs, Extra(elem))
		}
	}
	for mi, member := range req.Members {
		if !matched[mi] {
			diffs = append(diffs, Missing(expectedOf(member)))
		}
	}
	return diffs, nil
}

// diffSetLiteral is the hash fast path for sets whose members are all
// hashable literals. It reports ok=false when any member or element
// cannot take a multiset key, in which case the caller falls back to the
// general scan.
func diffSetLiteral(members []requirement.Requirement, elems []any) ([]Difference, bool) {
	memberKeys := make([]any, len(members))
	for i, member := range members {
		eq, ok := member.(requirement.Equality)
		if !ok {
			return nil, false
		}
		key, ok := multisetKey(eq.Value)
		if !ok {
			return nil, false
		}
		memberKeys[i] = key
	}
	elemKeys := make([]any, len(elems))
	for i, elem := range elems {
		key, ok := multisetKey(elem)
		if !ok {
			return nil, false
		}
		elemKeys[i] = key
	}

	// Members consume from the observed multiset in declared order.
	avail := make(map[any]int, len(elems))
	for _, key := range elemKeys {
		avail[key]++
	}
	consumedPerKey := make(map[any]int, len(members))
	matched := make([]bool, len(members))
	for i, key := range memberKeys {
		if avail[key] > 0 {
			avail[key]--
			consumedPerKey[key]++
			matched[i] = true
		}
	}

	var diffs []Difference
	seen := make(map[any]int, len(elems))
	for i, key := range elemKeys {
		seen[key]++
		if seen[key] > consumedPerKey[key] {
			diffs = append(diffs, Extra(elems[i]))
		}
	}
	for i, member := range members {
		if !matched[i] {
			diffs = append(diffs, Missing(expectedOf(member)))
		}
	}
	return diffs, true
}

// multisetKey canonicalizes a literal for multiset lookup so that
// numeric values compare across Go numeric types the way Equal does.
// NaN never equals itself, which map keys cannot express, so NaN forces
// the general scan. Anything non-hashable reports false.
func multisetKey(v any) (any, bool) {
	if requirement.IsAbsent(v) {
		return requirement.Absent, true
	}
	if f, ok := requirement.Number(v); ok {
		if math.IsNaN(f) {
			return nil, false
		}
		return f, true
	}
	switch v.(type) {
	case string, bool:
		return v, true
	}
	return nil, false
}
