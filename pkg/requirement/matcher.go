/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package requirement

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// Matches reports whether an observed element equals the literal value.
func (e Equality) Matches(v any) bool { return Equal(e.Value, v) }

// Matches reports whether an observed element satisfies the predicate.
// A panicking test counts as a non-match.
func (p Predicate) Matches(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return p.Test(v)
}

// Matches reports whether an observed element is a number within
// tolerance of the expected value.
func (a Approximate) Matches(v any) bool {
	f, ok := Number(v)
	if !ok || math.IsNaN(f) {
		return false
	}
	return math.Abs(f-a.Expected) <= a.Tolerance
}

// Equal reports whether two values are equal under the engine's literal
// semantics: absence matches only absence, numbers compare across Go
// numeric types, NaN matches nothing (IEEE-754, preserved intentionally),
// and everything else falls back to deep equality.
func Equal(a, b any) bool {
	if isNaN(a) || isNaN(b) {
		return false
	}
	aAbsent, bAbsent := IsAbsent(a), IsAbsent(b)
	if aAbsent || bAbsent {
		return aAbsent && bAbsent
	}
	if fa, ok := Number(a); ok {
		if fb, ok := Number(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// IsAbsent reports whether v is the explicit absence marker. An untyped
// nil counts as absent; zero and the empty string do not.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(absence)
	return ok
}

// Number reports the numeric value of v, accepting every Go integer and
// float width. Booleans and numeric strings are not numbers.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func isNaN(v any) bool {
	f, ok := Number(v)
	return ok && math.IsNaN(f)
}

// regexMatcher builds a Predicate whose test succeeds only when the
// observed value's string form fully matches the pattern. Partial
// matches fail. The pattern is re-anchored rather than span-checked:
// leftmost-first matching would otherwise reject full matches for
// alternations like a|aa.
func regexMatcher(re *regexp.Regexp) Predicate {
	anchored := regexp.MustCompile(`\A(?:` + re.String() + `)\z`)
	return Predicate{
		Test: func(v any) bool {
			if IsAbsent(v) {
				return false
			}
			s, ok := v.(string)
			if !ok {
				s = fmt.Sprint(v)
			}
			return anchored.MatchString(s)
		},
		Desc: "/" + re.String() + "/",
	}
}

// typeMatcher builds a Predicate testing that the observed value is an
// instance of t. Interface types match by implementation.
func typeMatcher(t reflect.Type) Predicate {
	return Predicate{
		Test: func(v any) bool {
			vt := reflect.TypeOf(v)
			if vt == nil {
				return false
			}
			if t.Kind() == reflect.Interface {
				return vt.Implements(t)
			}
			return vt == t
		},
		Desc: t.String(),
	}
}

// funcMatcher wraps a user-supplied boolean test, naming it after the
// function symbol when one is available.
func funcMatcher(fn func(any) bool) Predicate {
	desc := "func(...)"
	if pc := reflect.ValueOf(fn).Pointer(); pc != 0 {
		if f := runtime.FuncForPC(pc); f != nil {
			name := f.Name()
			if i := strings.LastIndex(name, "/"); i >= 0 {
				name = name[i+1:]
			}
			desc = name
		}
	}
	return Predicate{Test: fn, Desc: desc}
}
