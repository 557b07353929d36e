package requirement

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAtoms(t *testing.T) {
	req, err := Normalize("hello")
	require.NoError(t, err)
	assert.Equal(t, Equality{Value: "hello"}, req)

	req, err = Normalize(42)
	require.NoError(t, err)
	assert.Equal(t, Equality{Value: 42}, req)

	req, err = Normalize(nil)
	require.NoError(t, err)
	assert.Equal(t, Equality{Value: Absent}, req)

	// strings and []byte are atoms, not sequences
	req, err = Normalize([]byte("raw"))
	require.NoError(t, err)
	assert.IsType(t, Equality{}, req)
}

func TestNormalizePredicates(t *testing.T) {
	req, err := Normalize(regexp.MustCompile(`[a-z]+`))
	require.NoError(t, err)
	p, ok := req.(Predicate)
	require.True(t, ok)
	assert.Equal(t, "/[a-z]+/", p.Desc)

	req, err = Normalize(func(v any) bool { return v != nil })
	require.NoError(t, err)
	_, ok = req.(Predicate)
	assert.True(t, ok)

	req, err = Normalize(reflect.TypeOf(0))
	require.NoError(t, err)
	p, ok = req.(Predicate)
	require.True(t, ok)
	assert.Equal(t, "int", p.Desc)
	assert.True(t, p.Matches(5))
	assert.False(t, p.Matches("5"))
}

func TestNormalizeApprox(t *testing.T) {
	req, err := Normalize(Approx{Value: 10, Tolerance: 1})
	require.NoError(t, err)
	assert.Equal(t, Approximate{Expected: 10, Tolerance: 1}, req)

	_, err = Normalize(Approx{Value: 10, Tolerance: -1})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Normalize(Approx{Value: "ten", Tolerance: 1})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNormalizeSequence(t *testing.T) {
	req, err := Normalize([]any{1, "two", regexp.MustCompile(`x+`)})
	require.NoError(t, err)
	seq, ok := req.(Sequence)
	require.True(t, ok)
	require.Len(t, seq.Items, 3)
	assert.Equal(t, Equality{Value: 1}, seq.Items[0])
	assert.Equal(t, Equality{Value: "two"}, seq.Items[1])
	assert.IsType(t, Predicate{}, seq.Items[2])

	// typed slices canonicalize the same way
	req, err = Normalize([]int{3, 1, 2})
	require.NoError(t, err)
	seq, ok = req.(Sequence)
	require.True(t, ok)
	assert.Equal(t, Equality{Value: 3}, seq.Items[0])
}

func TestNormalizeSetSortsMembers(t *testing.T) {
	req, err := Normalize(map[any]struct{}{"b": {}, "a": {}, 3: {}})
	require.NoError(t, err)
	set, ok := req.(Set)
	require.True(t, ok)
	require.Len(t, set.Members, 3)

	// numbers sort before strings; declared order is deterministic
	assert.Equal(t, Equality{Value: 3}, set.Members[0])
	assert.Equal(t, Equality{Value: "a"}, set.Members[1])
	assert.Equal(t, Equality{Value: "b"}, set.Members[2])
}

func TestNormalizeMappingSortsEntries(t *testing.T) {
	req, err := Normalize(map[string]any{"y": 2, "x": 1})
	require.NoError(t, err)
	m, ok := req.(Mapping)
	require.True(t, ok)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, "x", m.Entries[0].Key)
	assert.Equal(t, "y", m.Entries[1].Key)
}

func TestNormalizeMalformedMappingValue(t *testing.T) {
	// a func with the wrong signature is not a usable requirement
	_, err := Normalize(map[string]any{"a": func(int) bool { return true }})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)

	// nested failures surface too, with no partial tree
	req, err := Normalize(map[string]any{"outer": map[string]any{"inner": make(chan int)}})
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Nil(t, req)
}

func TestNormalizeIdempotent(t *testing.T) {
	first, err := Normalize([]any{1, 2})
	require.NoError(t, err)
	second, err := Normalize(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeRejectsChannels(t *testing.T) {
	_, err := Normalize(make(chan int))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestMustNormalizePanics(t *testing.T) {
	assert.Panics(t, func() { MustNormalize(make(chan int)) })
	assert.NotPanics(t, func() { MustNormalize([]any{1}) })
}
