package requirement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLScalar(t *testing.T) {
	req, err := ParseYAML([]byte(`hello`))
	require.NoError(t, err)
	assert.Equal(t, Equality{Value: "hello"}, req)

	req, err = ParseYAML([]byte(`42`))
	require.NoError(t, err)
	assert.Equal(t, Equality{Value: 42}, req)

	req, err = ParseYAML([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, Equality{Value: Absent}, req)
}

func TestParseYAMLSequenceAndSet(t *testing.T) {
	req, err := ParseYAML([]byte("- 1\n- 2\n- 3\n"))
	require.NoError(t, err)
	seq, ok := req.(Sequence)
	require.True(t, ok)
	assert.Len(t, seq.Items, 3)

	// !set keeps authored member order
	req, err = ParseYAML([]byte(`!set [c, a, b]`))
	require.NoError(t, err)
	set, ok := req.(Set)
	require.True(t, ok)
	require.Len(t, set.Members, 3)
	assert.Equal(t, Equality{Value: "c"}, set.Members[0])
	assert.Equal(t, Equality{Value: "a"}, set.Members[1])
}

func TestParseYAMLRegex(t *testing.T) {
	req, err := ParseYAML([]byte(`!regex '[a-z]+'`))
	require.NoError(t, err)
	p, ok := req.(Predicate)
	require.True(t, ok)
	assert.True(t, p.Matches("abc"))
	assert.False(t, p.Matches("abc1"))

	_, err = ParseYAML([]byte(`!regex '['`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseYAMLApprox(t *testing.T) {
	req, err := ParseYAML([]byte(`!approx {value: 100, tolerance: 2.5}`))
	require.NoError(t, err)
	assert.Equal(t, Approximate{Expected: 100, Tolerance: 2.5}, req)

	_, err = ParseYAML([]byte(`!approx {value: 100, tolerance: -1}`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseYAMLMappingSortedByKey(t *testing.T) {
	doc := `
region:
  - us-east
  - us-west
count: !approx {value: 10, tolerance: 1}
active: true
`
	req, err := ParseYAML([]byte(doc))
	require.NoError(t, err)
	m, ok := req.(Mapping)
	require.True(t, ok)
	require.Len(t, m.Entries, 3)
	assert.Equal(t, "active", m.Entries[0].Key)
	assert.Equal(t, "count", m.Entries[1].Key)
	assert.Equal(t, "region", m.Entries[2].Key)
	assert.IsType(t, Approximate{}, m.Entries[1].Requirement)
	assert.IsType(t, Sequence{}, m.Entries[2].Requirement)
}

func TestParseYAMLEmptyDocument(t *testing.T) {
	_, err := ParseYAML([]byte(``))
	assert.ErrorIs(t, err, ErrMalformed)
}
