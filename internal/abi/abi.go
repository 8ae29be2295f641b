// Package abi converts untrusted raw pointers arriving at the foreign
// boundary into validated borrowed views. A view borrows caller-owned
// memory: it is only valid for the duration of the exported call that
// constructed it and must never be retained.
package abi

import (
	"math"
	"unsafe"
)

// BytesView wraps a pointer-plus-length pair as a byte slice. It returns
// ok=false for a nil pointer or a length that cannot be represented; a nil
// pointer is never dereferenced. A zero length with a non-nil pointer yields
// an empty view.
func BytesView(ptr *byte, n uint64) ([]byte, bool) {
	if ptr == nil {
		return nil, false
	}
	if n == 0 {
		return []byte{}, true
	}
	if n > math.MaxInt {
		return nil, false
	}
	return unsafe.Slice(ptr, int(n)), true
}

// CStringView scans for a NUL terminator starting at ptr and returns the
// bytes before it. The scan is bounded: if no terminator is found within max
// bytes the input is rejected, which keeps a missing terminator from walking
// arbitrary memory. The terminator itself is not included in the view.
func CStringView(ptr *byte, max int) ([]byte, bool) {
	if ptr == nil || max < 0 {
		return nil, false
	}
	p := unsafe.Pointer(ptr)
	for i := 0; i <= max; i++ {
		if *(*byte)(unsafe.Add(p, i)) == 0 {
			return unsafe.Slice(ptr, i), true
		}
	}
	return nil, false
}

// PutU64 writes v through a caller-provided output slot. The slot must have
// been null-checked by the boundary before the search ran; by the time
// PutU64 is reached a nil slot is an internal-invariant violation, so it
// panics into the caller's fault guard rather than failing silently.
func PutU64(slot *uint64, v uint64) {
	*slot = v
}
