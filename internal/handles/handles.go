// Package handles manages the ownership wrapper behind the opaque pointers
// compile hands out. Each compiled matcher is pinned in a registry map under
// a non-zero token; the token is what crosses the boundary, and the map
// reference is what keeps the matcher alive until free. The registry offers
// no use-after-free or double-free detection: those remain caller contract
// violations, exactly as the boundary documents.
package handles

import (
	"sync"

	"github.com/aifw-dev/regex-shim/domain/ports"
	"github.com/aifw-dev/regex-shim/internal/fault"
)

// Registry maps opaque tokens to pinned matchers. The internal lock protects
// only the map itself; it provides no handle-lifetime synchronization, so
// racing free against find on the same token stays undefined by contract.
type Registry struct {
	mu      sync.Mutex
	next    uintptr
	entries map[uintptr]ports.Matcher
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uintptr]ports.Matcher)}
}

// Register pins m and returns its token. Tokens are monotonic and never
// reused within a process run; zero is reserved as the null sentinel.
func (r *Registry) Register(m ports.Matcher) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	if r.next == 0 {
		fault.Trap("handles: token counter wrapped")
		return 0
	}
	r.entries[r.next] = m
	return r.next
}

// Lookup resolves a token to its matcher.
func (r *Registry) Lookup(token uintptr) (ports.Matcher, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.entries[token]
	return m, ok
}

// Release drops the pin for token. Zero and unknown tokens are no-ops, which
// makes free(null) safe to call any number of times.
func (r *Registry) Release(token uintptr) {
	if token == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, token)
}

// Len reports how many matchers are currently pinned.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
