package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesView(t *testing.T) {
	buf := []byte("haystack")

	view, ok := BytesView(&buf[0], uint64(len(buf)))
	require.True(t, ok)
	assert.Equal(t, buf, view)

	// The view borrows, it does not copy.
	view[0] = 'H'
	assert.Equal(t, byte('H'), buf[0])
}

func TestBytesView_NilPointer(t *testing.T) {
	view, ok := BytesView(nil, 8)
	assert.False(t, ok)
	assert.Nil(t, view)

	view, ok = BytesView(nil, 0)
	assert.False(t, ok)
	assert.Nil(t, view)
}

func TestBytesView_EmptyWithValidPointer(t *testing.T) {
	buf := []byte{0}
	view, ok := BytesView(&buf[0], 0)
	require.True(t, ok)
	assert.Empty(t, view)
}

func TestCStringView(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		max  int
		want string
		ok   bool
	}{
		{name: "simple", buf: []byte("ab+c\x00"), max: 64, want: "ab+c", ok: true},
		{name: "empty string", buf: []byte{0}, max: 64, want: "", ok: true},
		{name: "terminator at cap", buf: []byte("abcd\x00"), max: 4, want: "abcd", ok: true},
		{name: "no terminator within cap", buf: []byte("abcde\x00"), max: 4, ok: false},
		{name: "stops at first terminator", buf: []byte("ab\x00cd\x00"), max: 64, want: "ab", ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, ok := CStringView(&tt.buf[0], tt.max)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, string(view))
			}
		})
	}
}

func TestCStringView_NilPointer(t *testing.T) {
	view, ok := CStringView(nil, 64)
	assert.False(t, ok)
	assert.Nil(t, view)
}

func TestPutU64(t *testing.T) {
	var slot uint64
	PutU64(&slot, 42)
	assert.Equal(t, uint64(42), slot)
}
