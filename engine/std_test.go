package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/aifw-dev/regex-shim/domain/errors"
)

func TestParse_ValidPattern(t *testing.T) {
	e := NewStd()
	parsed, err := e.Parse("ab+c")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, "ab+c", parsed.Source)
	assert.NotNil(t, parsed.Tree)
}

func TestParse_SyntaxError(t *testing.T) {
	e := NewStd()
	for _, pattern := range []string{"(", "a{2,1}", "[z-a]"} {
		parsed, err := e.Parse(pattern)
		require.Errorf(t, err, "pattern %q", pattern)
		assert.Nil(t, parsed)

		var se *errs.SyntaxError
		assert.ErrorAs(t, err, &se)
	}
}

func TestBuild_ProducesMatcher(t *testing.T) {
	e := NewStd()
	parsed, err := e.Parse("a.c")
	require.NoError(t, err)

	m, err := e.Build(parsed)
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestFind_AbsoluteOffsets(t *testing.T) {
	e := NewStd()
	parsed, err := e.Parse("ab+c")
	require.NoError(t, err)
	m, err := e.Build(parsed)
	require.NoError(t, err)

	haystack := []byte("xxabbbcxx")

	span, ok := m.Find(haystack, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(2), span.Start)
	assert.Equal(t, uint64(7), span.End)

	// From an offset inside the only match there is nothing left to find.
	_, ok = m.Find(haystack, 5)
	assert.False(t, ok)

	// Searching the empty remaining region is well defined.
	_, ok = m.Find(haystack, len(haystack))
	assert.False(t, ok)
}

func TestFind_LeftmostFirst(t *testing.T) {
	e := NewStd()
	parsed, err := e.Parse("b|ab")
	require.NoError(t, err)
	m, err := e.Build(parsed)
	require.NoError(t, err)

	// "ab" matches at offset 1 and "b" alone at offset 2; the leftmost
	// starting position wins regardless of alternative order.
	span, ok := m.Find([]byte("xaby"), 0)
	require.True(t, ok)
	assert.Equal(t, uint64(1), span.Start)
	assert.Equal(t, uint64(3), span.End)
}

func TestFind_EmptyPattern(t *testing.T) {
	e := NewStd()
	parsed, err := e.Parse("")
	require.NoError(t, err)
	m, err := e.Build(parsed)
	require.NoError(t, err)

	span, ok := m.Find([]byte("abc"), 1)
	require.True(t, ok)
	assert.Equal(t, uint64(1), span.Start)
	assert.Equal(t, uint64(1), span.End)
}

func TestNew_ReturnsDefaultBackend(t *testing.T) {
	require.NotNil(t, New())
}
