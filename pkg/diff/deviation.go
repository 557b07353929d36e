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

// Delta returns the signed deviation of an observed number from its
// expected value, and whether the deviation lies within the tolerance.
// The boundary is inclusive.
func Delta(observed, expected, tolerance float64) (delta float64, within bool) {
	delta = observed - expected
	return delta, math.Abs(delta) <= tolerance
}

// diffApproximate compares a scalar observed value against a numeric
// tolerance requirement. NaN observed values are invalid rather than
// deviant: no deviation can be computed from them.
func diffApproximate(req requirement.Approximate, observed any) ([]Difference, error) {
	if !isScalar(observed) {
		return nil, fmt.Errorf("%w: approximate requirement against %T", ErrShapeMismatch, observed)
	}
	if requirement.IsAbsent(observed) {
		return []Difference{Missing(req.Expected)}, nil
	}

	f, ok := requirement.Number(observed)
	if !ok || math.IsNaN(f) {
		return []Difference{Invalid(observed, description(req.String()))}, nil
	}

	delta, within := Delta(f, req.Expected, req.Tolerance)
	if within {
		return nil, nil
	}
	return []Difference{Deviation(observed, req.Expected, delta)}, nil
}
