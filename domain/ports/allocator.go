package ports

// ByteAllocator is the memory source the boundary layer draws from. The
// production implementation is a growth-only arena: allocations live for the
// remainder of the process and there is no per-allocation free.
type ByteAllocator interface {
	// AllocBytes returns a zeroed slice of n bytes, or nil when the
	// allocator is exhausted. Exhaustion is an ordinary failure, not a
	// fault: the caller surfaces it as a build error.
	AllocBytes(n int) []byte

	// Remaining reports how many bytes can still be allocated.
	Remaining() int

	// Capacity reports the fixed size of the backing region.
	Capacity() int
}
