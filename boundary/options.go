package boundary

import (
	"github.com/aifw-dev/regex-shim/config"
	"github.com/aifw-dev/regex-shim/domain/ports"
	"github.com/aifw-dev/regex-shim/engine"
	"github.com/aifw-dev/regex-shim/internal/arena"
	"github.com/aifw-dev/regex-shim/internal/handles"
)

// Boundary drives the engine and owns the handle registry. A zero Boundary
// is not usable; construct one with New.
type Boundary struct {
	engine     ports.Engine
	alloc      ports.ByteAllocator
	handles    *handles.Registry
	maxPattern int
}

// Option configures a Boundary.
type Option func(*Boundary)

// WithEngine replaces the regex engine backend.
func WithEngine(e ports.Engine) Option {
	return func(b *Boundary) {
		b.engine = e
	}
}

// WithAllocator replaces the memory source. The default is the process-wide
// arena; tests inject a small arena to exercise deterministic exhaustion.
func WithAllocator(a ports.ByteAllocator) Option {
	return func(b *Boundary) {
		b.alloc = a
	}
}

// WithConfig applies the limits from a configuration: a dedicated arena
// sized to ArenaCapacity and a pattern cap of MaxPatternSize. The
// configuration should have passed Validate; non-positive fields are
// ignored in favor of the defaults.
func WithConfig(cfg config.Config) Option {
	return func(b *Boundary) {
		if cfg.ArenaCapacity > 0 {
			b.alloc = arena.New(cfg.ArenaCapacity)
		}
		if cfg.MaxPatternSize > 0 {
			b.maxPattern = cfg.MaxPatternSize
		}
	}
}

// WithMaxPatternSize bounds the terminator scan in Compile.
func WithMaxPatternSize(n int) Option {
	return func(b *Boundary) {
		if n > 0 {
			b.maxPattern = n
		}
	}
}

// New creates a Boundary with the build's default engine, the process-wide
// arena, and the default pattern cap.
func New(opts ...Option) *Boundary {
	b := &Boundary{
		maxPattern: config.DefaultMaxPatternSize,
		handles:    handles.NewRegistry(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.engine == nil {
		b.engine = engine.New()
	}
	if b.alloc == nil {
		b.alloc = arena.Default()
	}
	return b
}

// Handles reports how many compiled matchers are currently live. Intended
// for host-side diagnostics and tests.
func (b *Boundary) Handles() int {
	return b.handles.Len()
}
