package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datacheck/datacheck/pkg/diff"
	"github.com/datacheck/datacheck/pkg/requirement"
)

func TestValidateSuccess(t *testing.T) {
	failure, err := Validate("a", "a")
	require.NoError(t, err)
	assert.Nil(t, failure)

	failure, err = Validate([]any{1, 2, 3}, []any{1, 2, 3})
	require.NoError(t, err)
	assert.Nil(t, failure)
}

// Reflexivity: materialized data always validates against itself.
func TestValidateReflexive(t *testing.T) {
	data := []any{
		"scalar",
		42,
		[]any{1, "two", 3.5},
		map[string]any{"g1": []any{1, 2}, "g2": "x"},
		map[string]any{"nested": map[string]any{"inner": []any{true, false}}},
	}
	for _, d := range data {
		failure, err := Validate(d, d)
		require.NoError(t, err)
		assert.Nil(t, failure, "validate(D, D) must succeed for %v", d)
	}
}

func TestValidateFailureReport(t *testing.T) {
	failure, err := Validate([]any{"a", "c", "b"}, []any{"a", "b", "c"})
	require.NoError(t, err)
	require.NotNil(t, failure)

	assert.Equal(t, 2, failure.Counts.Invalid)
	assert.Equal(t, 2, failure.Counts.Total())
	assert.Len(t, failure.Differences, 2)
	assert.EqualError(t, failure, "validation failed: 2 differences (missing=0, extra=0, invalid=2, deviation=0)")
}

func TestValidateGrouped(t *testing.T) {
	req := map[string]any{
		"x": map[any]struct{}{1: {}, 2: {}},
		"y": map[any]struct{}{3: {}},
	}
	observed := map[string]any{
		"x": []any{1, 2},
		"z": []any{9},
	}

	failure, err := Validate(observed, req)
	require.NoError(t, err)
	require.NotNil(t, failure)
	assert.Equal(t, 1, failure.Counts.Missing)
	assert.Equal(t, 1, failure.Counts.Extra)
	require.Len(t, failure.Differences, 2)
	assert.Equal(t, "y", failure.Differences[0].Group)
	assert.Equal(t, "z", failure.Differences[1].Group)
}

func TestValidateMalformedRequirement(t *testing.T) {
	failure, err := Validate("data", map[string]any{"a": make(chan int)})
	assert.ErrorIs(t, err, requirement.ErrMalformed)
	assert.Nil(t, failure, "no partial report on hard errors")
}

func TestValidateShapeMismatch(t *testing.T) {
	failure, err := Validate("scalar", []any{1, 2})
	assert.ErrorIs(t, err, diff.ErrShapeMismatch)
	assert.Nil(t, failure)
}

func TestValidateDefaultTolerance(t *testing.T) {
	v := New(WithDefaultTolerance(0.5))

	failure, err := v.Validate(10.3, 10)
	require.NoError(t, err)
	assert.Nil(t, failure)

	failure, err = v.Validate(10.6, 10)
	require.NoError(t, err)
	require.NotNil(t, failure)
	assert.Equal(t, 1, failure.Counts.Deviation)

	// tolerance applies through nested structures
	failure, err = v.Validate(map[string]any{"g": []any{10.4, 20.4}}, map[string]any{"g": []any{10, 20}})
	require.NoError(t, err)
	assert.Nil(t, failure)

	// strings keep exact comparison
	failure, err = v.Validate("b", "a")
	require.NoError(t, err)
	require.NotNil(t, failure)
	assert.Equal(t, 1, failure.Counts.Invalid)
}

func TestValidateDeterminism(t *testing.T) {
	req := map[string]any{
		"a": map[any]struct{}{"p": {}, "q": {}},
		"b": []any{1, 2, 3},
	}
	observed := map[string]any{
		"a": []any{"q", "r"},
		"b": []any{1, 9, 3, 4},
		"c": "stray",
	}

	first, err := Validate(observed, req)
	require.NoError(t, err)
	require.NotNil(t, first)
	for range 20 {
		again, err := Validate(observed, req)
		require.NoError(t, err)
		assert.Equal(t, first.Differences, again.Differences)
		assert.Equal(t, first.Render(), again.Render())
	}
}

func TestValidateTreeReuse(t *testing.T) {
	req, err := requirement.Normalize(map[string]any{"g": []any{1, 2}})
	require.NoError(t, err)

	// normalized trees pass through untouched and can be reused
	failure, err := Validate(map[string]any{"g": []any{1, 2}}, req)
	require.NoError(t, err)
	assert.Nil(t, failure)

	failure, err = Validate(map[string]any{"g": []any{2, 1}}, req)
	require.NoError(t, err)
	require.NotNil(t, failure)
	assert.Equal(t, 2, failure.Counts.Invalid)
}
