// Package host provides embedder-facing bindings for a compiled guest shim.
// It loads the guest binary under a pure-Go wasm runtime, resolves the flat
// ABI exports, and drives compile/find/free through guest linear memory. It
// is the Go counterpart of the ctypes bindings other language hosts use.
package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/aifw-dev/regex-shim/domain/entities"
)

// Handle identifies a compiled pattern inside the guest. The zero value is
// the null sentinel and never refers to a live pattern.
type Handle uint32

var (
	// ErrCompile is returned when the guest rejects a pattern. The guest ABI
	// does not distinguish syntax errors from arena exhaustion; neither can
	// this error.
	ErrCompile = errors.New("host: guest rejected pattern")

	// ErrGuestMemory is returned when the guest arena cannot stage a buffer.
	ErrGuestMemory = errors.New("host: guest memory exhausted")

	// ErrClosed is returned on calls after Close.
	ErrClosed = errors.New("host: library closed")
)

// abiExports are the functions every guest shim must export.
var abiExports = []string{"aifw_regex_compile", "aifw_regex_free", "aifw_regex_find", "aifw_alloc"}

// Library is an instantiated guest shim. Methods on a Library are safe for
// sequential use; the guest's own concurrency rules apply on top (find is
// reentrant per handle, free must not race find on the same handle).
type Library struct {
	runtime wazero.Runtime
	module  api.Module
	funcs   map[string]api.Function
	cfg     libraryConfig
	closed  bool

	// Staging state. The guest arena never reclaims memory, so Find reuses
	// one haystack buffer and one out-slot block across calls instead of
	// drawing fresh arena space on every search.
	hay    stageBuf
	outPtr uint32
}

// stageBuf tracks one staging allocation in guest memory.
type stageBuf struct {
	ptr uint32
	cap uint32
}

// fits reports whether the buffer can hold n bytes without reallocating.
func (b stageBuf) fits(n uint32) bool {
	return b.ptr != 0 && n <= b.cap
}

// Open compiles and instantiates a guest shim binary.
func Open(ctx context.Context, binary []byte, opts ...Option) (*Library, error) {
	cfg := defaultLibraryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.limits.Validate(); err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}

	runtime := wazero.NewRuntimeWithConfig(ctx, cfg.runtimeConfig)
	wasi_snapshot_preview1.MustInstantiate(ctx, runtime)

	module, err := runtime.InstantiateWithConfig(ctx, binary,
		wazero.NewModuleConfig().
			WithName(cfg.moduleName).
			WithStartFunctions("_initialize"))
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("host: instantiate guest: %w", err)
	}

	funcs := make(map[string]api.Function, len(abiExports))
	for _, name := range abiExports {
		fn := module.ExportedFunction(name)
		if fn == nil {
			_ = runtime.Close(ctx)
			return nil, fmt.Errorf("host: guest does not export %q", name)
		}
		funcs[name] = fn
	}

	cfg.logger.Debug("guest shim instantiated", "module", cfg.moduleName)
	return &Library{runtime: runtime, module: module, funcs: funcs, cfg: cfg}, nil
}

// Compile stages the pattern in guest memory and compiles it. The guest
// returns a null handle for every failure kind; Compile maps that to
// ErrCompile. Patterns over the configured cap are rejected before any
// guest memory is staged.
func (l *Library) Compile(ctx context.Context, pattern string) (Handle, error) {
	if l.closed {
		return 0, ErrClosed
	}
	if len(pattern) > l.cfg.limits.MaxPatternSize {
		return 0, fmt.Errorf("%w: pattern exceeds %d bytes", ErrCompile, l.cfg.limits.MaxPatternSize)
	}
	buf := make([]byte, 0, len(pattern)+1)
	buf = append(buf, pattern...)
	buf = append(buf, 0)

	ptr, err := l.stage(ctx, buf)
	if err != nil {
		return 0, err
	}
	res, err := l.funcs["aifw_regex_compile"].Call(ctx, uint64(ptr))
	if err != nil {
		return 0, fmt.Errorf("host: call aifw_regex_compile: %w", err)
	}
	handle := Handle(uint32(res[0]))
	if handle == 0 {
		l.cfg.logger.Debug("guest rejected pattern", "pattern", pattern)
		return 0, ErrCompile
	}
	return handle, nil
}

// Find searches haystack from start with a previously compiled handle. It
// returns the absolute match span and whether a match was found; an invalid
// argument reported by the guest becomes an error.
func (l *Library) Find(ctx context.Context, h Handle, haystack []byte, start uint64) (entities.Span, bool, error) {
	if l.closed {
		return entities.Span{}, false, ErrClosed
	}

	// The guest requires a non-null haystack pointer even for an empty
	// haystack, so stage at least one byte. The staging buffer is reused
	// across calls whenever the previous allocation is large enough.
	stageLen := uint32(len(haystack))
	if stageLen == 0 {
		stageLen = 1
	}
	if !l.hay.fits(stageLen) {
		ptr, err := l.alloc(ctx, stageLen)
		if err != nil {
			return entities.Span{}, false, err
		}
		l.hay = stageBuf{ptr: ptr, cap: stageLen}
	}
	if len(haystack) > 0 && !l.module.Memory().Write(l.hay.ptr, haystack) {
		return entities.Span{}, false, fmt.Errorf("host: write %d bytes at %#x", len(haystack), l.hay.ptr)
	}
	outPtr, err := l.outSlots(ctx)
	if err != nil {
		return entities.Span{}, false, err
	}

	res, err := l.funcs["aifw_regex_find"].Call(ctx,
		uint64(h), uint64(l.hay.ptr), uint64(len(haystack)), start,
		uint64(outPtr), uint64(outPtr+8))
	if err != nil {
		return entities.Span{}, false, fmt.Errorf("host: call aifw_regex_find: %w", err)
	}

	switch status := entities.Status(api.DecodeI32(res[0])); status {
	case entities.StatusNoMatch:
		return entities.Span{}, false, nil
	case entities.StatusMatch:
		s, ok1 := l.module.Memory().ReadUint64Le(outPtr)
		e, ok2 := l.module.Memory().ReadUint64Le(outPtr + 8)
		if !ok1 || !ok2 {
			return entities.Span{}, false, fmt.Errorf("host: read output slots at %#x", outPtr)
		}
		return entities.Span{Start: s, End: e}, true, nil
	default:
		return entities.Span{}, false, fmt.Errorf("host: guest reported %s", status)
	}
}

// Free releases a guest handle. A zero handle is a safe no-op, mirroring the
// guest contract.
func (l *Library) Free(ctx context.Context, h Handle) error {
	if l.closed {
		return ErrClosed
	}
	if _, err := l.funcs["aifw_regex_free"].Call(ctx, uint64(h)); err != nil {
		return fmt.Errorf("host: call aifw_regex_free: %w", err)
	}
	return nil
}

// Close tears down the runtime and every module it instantiated.
func (l *Library) Close(ctx context.Context) error {
	if l.closed {
		return nil
	}
	l.closed = true
	return l.runtime.Close(ctx)
}

// alloc reserves n bytes of guest memory through aifw_alloc. The allocation
// is arena-backed on the guest side and lives until the guest instance is
// torn down.
func (l *Library) alloc(ctx context.Context, n uint32) (uint32, error) {
	res, err := l.funcs["aifw_alloc"].Call(ctx, uint64(n))
	if err != nil {
		return 0, fmt.Errorf("host: call aifw_alloc: %w", err)
	}
	ptr := uint32(res[0])
	if ptr == 0 {
		return 0, ErrGuestMemory
	}
	return ptr, nil
}

// stage allocates guest memory and copies data into it.
func (l *Library) stage(ctx context.Context, data []byte) (uint32, error) {
	ptr, err := l.alloc(ctx, uint32(len(data)))
	if err != nil {
		return 0, err
	}
	if !l.module.Memory().Write(ptr, data) {
		return 0, fmt.Errorf("host: write %d bytes at %#x", len(data), ptr)
	}
	return ptr, nil
}

// outSlots returns the shared 16-byte output block, allocating it on first
// use. The guest only ever writes it inside aifw_regex_find, so one block
// per Library suffices for sequential use.
func (l *Library) outSlots(ctx context.Context) (uint32, error) {
	if l.outPtr != 0 {
		return l.outPtr, nil
	}
	ptr, err := l.alloc(ctx, 16)
	if err != nil {
		return 0, err
	}
	l.outPtr = ptr
	return ptr, nil
}
