//go:build wasip1

package guest

import (
	"unsafe"

	"github.com/aifw-dev/regex-shim/boundary"
	"github.com/aifw-dev/regex-shim/internal/arena"
)

// shim is captured once at startup; every export goes through it.
var shim = boundary.New()

// aifwRegexCompile compiles the null-terminated pattern at the given linear
// memory offset. Returns an opaque handle, or 0 on any failure.
//
//go:wasmexport aifw_regex_compile
func aifwRegexCompile(pattern uint32) uint32 {
	return uint32(shim.Compile((*byte)(unsafe.Pointer(uintptr(pattern)))))
}

// aifwRegexFree releases a handle returned by aifw_regex_compile. A zero
// handle is a safe no-op.
//
//go:wasmexport aifw_regex_free
func aifwRegexFree(handle uint32) {
	shim.Free(uintptr(handle))
}

// aifwRegexFind searches the haystack from start. Returns 1 on match with
// the absolute byte offsets written through outStart/outEnd, 0 on no match,
// and a negative value on invalid arguments.
//
//go:wasmexport aifw_regex_find
func aifwRegexFind(handle, haystack uint32, haystackLen, start uint64, outStart, outEnd uint32) int32 {
	return int32(shim.Find(
		uintptr(handle),
		(*byte)(unsafe.Pointer(uintptr(haystack))),
		haystackLen,
		start,
		(*uint64)(unsafe.Pointer(uintptr(outStart))),
		(*uint64)(unsafe.Pointer(uintptr(outEnd))),
	))
}

// aifwAlloc reserves size bytes of 8-aligned guest memory from the arena so
// the host can stage patterns, haystacks, and output slots. Returns 0 on
// exhaustion. Staged memory follows the arena's lifetime model: it is never
// individually reclaimed.
//
//go:wasmexport aifw_alloc
func aifwAlloc(size uint32) uint32 {
	if size == 0 {
		return 0
	}
	p := arena.Default().Alloc(uintptr(size), 8)
	if p == nil {
		return 0
	}
	return uint32(uintptr(p))
}
