// Package testutil provides shared helpers for exercising the raw-pointer
// boundary from native test code.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aifw-dev/regex-shim/domain/entities"
)

// CString returns a pointer to a NUL-terminated copy of s, the way a caller
// on the far side of the boundary would pass a pattern.
func CString(s string) *byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0]
}

// Haystack returns a pointer to the first byte of b plus its length. For an
// empty haystack it still returns a valid non-nil pointer, since the
// boundary requires one.
func Haystack(b []byte) (*byte, uint64) {
	if len(b) == 0 {
		one := []byte{0}
		return &one[0], 0
	}
	return &b[0], uint64(len(b))
}

// RequireSpan asserts both output slots against the expected byte range.
func RequireSpan(t *testing.T, start, end uint64, outStart, outEnd uint64) {
	t.Helper()
	require.Equal(t, start, outStart, "match start offset")
	require.Equal(t, end, outEnd, "match end offset")
}

// RequireStatus asserts a boundary status code.
func RequireStatus(t *testing.T, want, got entities.Status) {
	t.Helper()
	require.Equal(t, want, got, "expected %s, got %s", want, got)
}
