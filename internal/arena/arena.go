// Package arena implements a monotonic bump allocator over a fixed-capacity
// region. It is the sole memory source for the boundary layer when the
// hosting environment provides no general-purpose allocator. The cursor only
// ever advances: there is no per-allocation free, which trades unbounded
// space growth for correctness and lock-freedom. That is acceptable for the
// workload it serves, a single compile-and-search session.
package arena

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/aifw-dev/regex-shim/config"
	"github.com/aifw-dev/regex-shim/internal/fault"
)

// Arena is a fixed-capacity bump allocator. Allocation is lock-free: the
// offset cursor advances through a compare-and-swap retry loop, so no two
// concurrent calls can receive overlapping ranges and no call ever blocks.
type Arena struct {
	region []byte
	cursor atomic.Uint64
}

// New creates an arena with the given capacity in bytes. If capacity <= 0,
// config.DefaultArenaCapacity is used.
func New(capacity int) *Arena {
	if capacity <= 0 {
		capacity = config.DefaultArenaCapacity
	}
	return &Arena{region: make([]byte, capacity)}
}

var (
	defaultOnce  sync.Once
	defaultArena *Arena
)

// Default returns the process-wide arena, created on first use with
// config.DefaultArenaCapacity. It persists for the process lifetime and is
// never torn down.
func Default() *Arena {
	defaultOnce.Do(func() {
		defaultArena = New(config.DefaultArenaCapacity)
	})
	return defaultArena
}

// Alloc reserves size bytes whose address is a multiple of align and returns
// a pointer valid for the remainder of the process lifetime. align must be a
// power of two. On exhaustion Alloc returns nil with no side effect; the
// arena never aborts the process, only a failed downstream operation does.
func (a *Arena) Alloc(size, align uintptr) unsafe.Pointer {
	if size == 0 || align == 0 || align&(align-1) != 0 {
		return nil
	}
	capacity := uintptr(len(a.region))
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.region)))
	for {
		off := uintptr(a.cursor.Load())
		if off > capacity {
			fault.Trap("arena: cursor beyond capacity")
			return nil
		}
		aligned := ((base + off + align - 1) &^ (align - 1)) - base
		end := aligned + size
		if end > capacity || end < aligned {
			return nil
		}
		if a.cursor.CompareAndSwap(uint64(off), uint64(end)) {
			return unsafe.Pointer(&a.region[aligned])
		}
		// Lost the race; reread the cursor and retry.
	}
}

// AllocBytes returns a zeroed byte slice backed by the arena, or nil when
// n <= 0 or the arena is exhausted.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	p := a.Alloc(uintptr(n), 1)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// Free is a contractual no-op: the arena never reuses freed space.
func (a *Arena) Free(unsafe.Pointer) {}

// Reset rewinds the cursor to zero. For test harnesses only: it is never
// reachable from the boundary, and previously returned allocations become
// aliased after a reset.
func (a *Arena) Reset() {
	a.cursor.Store(0)
}
