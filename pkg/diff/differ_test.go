package diff

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datacheck/datacheck/pkg/requirement"
)

func TestDiffScalarEquality(t *testing.T) {
	diffs, err := Diff(requirement.MustNormalize("a"), "a")
	require.NoError(t, err)
	assert.Empty(t, diffs)

	diffs, err = Diff(requirement.MustNormalize("a"), "b")
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, Invalid("b", "a"), diffs[0])
}

func TestDiffScalarAbsence(t *testing.T) {
	// a missing value against a concrete requirement is missing, not invalid
	diffs, err := Diff(requirement.MustNormalize(5), nil)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, KindMissing, diffs[0].Kind)
	assert.Equal(t, 5, diffs[0].Expected)

	// a required absence flags any present value as extra
	diffs, err = Diff(requirement.MustNormalize(nil), "x")
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, Extra("x"), diffs[0])

	// zero and empty string are values, not absence
	diffs, err = Diff(requirement.MustNormalize(nil), 0)
	require.NoError(t, err)
	assert.Len(t, diffs, 1)
}

func TestDiffScalarPredicate(t *testing.T) {
	req := requirement.MustNormalize(regexp.MustCompile(`[a-z]+`))

	diffs, err := Diff(req, "abc")
	require.NoError(t, err)
	assert.Empty(t, diffs)

	diffs, err = Diff(req, "abc9")
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, KindInvalid, diffs[0].Kind)
	assert.Equal(t, "abc9", diffs[0].Observed)
}

func TestDiffScalarShapeMismatch(t *testing.T) {
	_, err := Diff(requirement.MustNormalize("a"), []any{"a"})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Diff(requirement.MustNormalize([]any{1, 2}), 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Diff(requirement.MustNormalize(map[string]any{"g": 1}), 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDiffSequencePositional(t *testing.T) {
	req := requirement.MustNormalize([]any{"a", "b", "c"})

	diffs, err := Diff(req, []any{"a", "b", "c"})
	require.NoError(t, err)
	assert.Empty(t, diffs)

	// same elements, wrong order: two invalids, positions 1 and 2
	diffs, err = Diff(req, []any{"a", "c", "b"})
	require.NoError(t, err)
	require.Len(t, diffs, 2)
	assert.Equal(t, Invalid("c", "b"), diffs[0])
	assert.Equal(t, Invalid("b", "c"), diffs[1])
}

func TestDiffSequenceTails(t *testing.T) {
	req := requirement.MustNormalize([]any{"a", "b", "c"})

	diffs, err := Diff(req, []any{"a"})
	require.NoError(t, err)
	require.Len(t, diffs, 2)
	assert.Equal(t, Missing("b"), diffs[0])
	assert.Equal(t, Missing("c"), diffs[1])

	diffs, err = Diff(req, []any{"a", "b", "c", "d", "e"})
	require.NoError(t, err)
	require.Len(t, diffs, 2)
	assert.Equal(t, Extra("d"), diffs[0])
	assert.Equal(t, Extra("e"), diffs[1])
}

func TestDiffSequenceApproximateItem(t *testing.T) {
	req := requirement.MustNormalize([]any{requirement.Approx{Value: 10, Tolerance: 1}, "x"})

	diffs, err := Diff(req, []any{12.5, "x"})
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, KindDeviation, diffs[0].Kind)
	assert.InDelta(t, 2.5, diffs[0].Delta, 1e-9)
}

func TestDiffTypedSliceObserved(t *testing.T) {
	diffs, err := Diff(requirement.MustNormalize([]any{1, 2, 3}), []int{1, 2, 3})
	require.NoError(t, err)
	assert.Empty(t, diffs)
}

func TestDiffDeterminism(t *testing.T) {
	req := requirement.MustNormalize(map[any]struct{}{"a": {}, "b": {}, "c": {}, 1: {}, 2: {}})
	observed := []any{"c", 9, "a", "q"}

	first, err := Diff(req, observed)
	require.NoError(t, err)
	for range 20 {
		again, err := Diff(req, observed)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
