/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package diff

import "fmt"

// Kind classifies a difference.
type Kind string

const (
	// KindMissing marks a required element absent from the observed data.
	KindMissing Kind = "missing"

	// KindExtra marks an observed element not sanctioned by any requirement.
	KindExtra Kind = "extra"

	// KindInvalid marks an observed element that fails its requirement.
	KindInvalid Kind = "invalid"

	// KindDeviation marks a numeric element outside its tolerance.
	KindDeviation Kind = "deviation"
)

// Kinds lists all difference kinds in reporting order.
var Kinds = []Kind{KindMissing, KindExtra, KindInvalid, KindDeviation}

// Difference is one detected discrepancy between observed data and a
// requirement. Differences are immutable value objects; a validation
// that produces none is a success.
type Difference struct {
	Kind Kind `json:"kind" yaml:"kind"`

	// Observed is the offending observed value. Unset for missing
	// differences.
	Observed any `json:"observed,omitempty" yaml:"observed,omitempty"`

	// Expected is the required value, or a description of the failed
	// predicate. Unset for extra differences.
	Expected any `json:"expected,omitempty" yaml:"expected,omitempty"`

	// Delta is observed minus expected, set for deviations only.
	Delta float64 `json:"delta,omitempty" yaml:"delta,omitempty"`

	// Group is the group key this difference belongs to, set only by
	// grouped comparison. Nested groups render as a dotted key path.
	Group any `json:"group,omitempty" yaml:"group,omitempty"`
}

// Missing returns a difference for a required element absent from the
// observed data.
func Missing(expected any) Difference {
	return Difference{Kind: KindMissing, Expected: expected}
}

// Extra returns a difference for an observed element no requirement
// sanctions.
func Extra(observed any) Difference {
	return Difference{Kind: KindExtra, Observed: observed}
}

// Invalid returns a difference for an observed element that fails its
// requirement.
func Invalid(observed, expected any) Difference {
	return Difference{Kind: KindInvalid, Observed: observed, Expected: expected}
}

// Deviation returns a difference for a numeric element outside tolerance;
// delta is observed minus expected.
func Deviation(observed, expected any, delta float64) Difference {
	return Difference{Kind: KindDeviation, Observed: observed, Expected: expected, Delta: delta}
}

func (d Difference) String() string {
	var body string
	switch d.Kind {
	case KindMissing:
		body = fmt.Sprintf("missing: want %s", format(d.Expected))
	case KindExtra:
		body = fmt.Sprintf("extra: got %s", format(d.Observed))
	case KindInvalid:
		body = fmt.Sprintf("invalid: got %s, want %s", format(d.Observed), format(d.Expected))
	case KindDeviation:
		body = fmt.Sprintf("deviation: got %s, want %s (%+g)", format(d.Observed), format(d.Expected), d.Delta)
	default:
		body = fmt.Sprintf("%s: got %s, want %s", d.Kind, format(d.Observed), format(d.Expected))
	}
	if d.Group != nil {
		return fmt.Sprintf("[%v] %s", d.Group, body)
	}
	return body
}

// format renders a value for messages, quoting strings so that "" stays
// visible in output.
func format(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
