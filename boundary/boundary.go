// Package boundary implements the shim's three exported operations over raw
// caller pointers: compile, free, and find. Every user-triggerable condition
// is converted to a sentinel value here, either a null handle or a negative
// status, so that nothing ever unwinds across the foreign boundary. Only
// internal invariant violations reach the fault sink.
package boundary

import (
	"unicode/utf8"

	"github.com/aifw-dev/regex-shim/domain/entities"
	errs "github.com/aifw-dev/regex-shim/domain/errors"
	"github.com/aifw-dev/regex-shim/internal/abi"
	"github.com/aifw-dev/regex-shim/internal/fault"
)

// NullHandle is the sentinel compile returns on any failure. Success and a
// non-null handle always go together; a failed compile never leaves a
// partially built handle behind.
const NullHandle uintptr = 0

// Compile validates a null-terminated pattern and compiles it through the
// engine. The pointer is either nil or readable up to and including its
// terminator; anything else is a caller contract violation.
//
// Validation order: nil pointer, bounded terminator scan, UTF-8 check,
// engine parse, engine build. Each failure yields NullHandle. Build consumes
// arena capacity; exhaustion surfaces as a build failure and is therefore
// indistinguishable from a syntax error at this boundary.
func (b *Boundary) Compile(pattern *byte) uintptr {
	defer fault.Guard()

	handle, err := b.compile(pattern)
	if err != nil {
		b.fatalCheck(err)
		return NullHandle
	}
	return handle
}

func (b *Boundary) compile(pattern *byte) (uintptr, error) {
	raw, ok := abi.CStringView(pattern, b.maxPattern)
	if !ok {
		return NullHandle, &errs.ValidationError{Argument: "pattern"}
	}
	if !utf8.Valid(raw) {
		return NullHandle, &errs.EncodingError{Length: len(raw)}
	}

	// Copy the pattern into the arena so the compiled matcher never holds a
	// borrowed view of caller memory.
	source := ""
	if len(raw) > 0 {
		stable := b.alloc.AllocBytes(len(raw))
		if stable == nil {
			return NullHandle, &errs.MemoryError{
				Requested: len(raw),
				Remaining: b.alloc.Remaining(),
				Capacity:  b.alloc.Capacity(),
			}
		}
		copy(stable, raw)
		source = string(stable)
	}

	parsed, err := b.engine.Parse(source)
	if err != nil {
		return NullHandle, err
	}
	matcher, err := b.engine.Build(parsed)
	if err != nil {
		return NullHandle, err
	}
	return b.handles.Register(matcher), nil
}

// Free releases the ownership wrapper behind handle. A null handle is always
// a safe no-op. Freeing a live handle while another thread is inside Find on
// it, or freeing the same handle twice, is a caller contract violation; the
// boundary keeps no state to detect either. The arena memory consumed during
// compile is never reclaimed.
func (b *Boundary) Free(handle uintptr) {
	defer fault.Guard()

	if handle == NullHandle {
		return
	}
	b.handles.Release(handle)
}

// Find searches haystack from start and reports the leftmost-first match.
// handle, haystack, outStart, and outEnd must all be non-nil; any nil
// required argument yields StatusError with no output written. start is
// clamped to the haystack length, so an offset past the end searches an
// empty remaining region and reports StatusNoMatch rather than an error.
// On a match the absolute byte offsets are written through the output slots;
// on no match the slots are left untouched.
func (b *Boundary) Find(handle uintptr, haystack *byte, haystackLen uint64, start uint64, outStart, outEnd *uint64) entities.Status {
	defer fault.Guard()

	if outStart == nil || outEnd == nil {
		return entities.StatusError
	}
	span, found, err := b.find(handle, haystack, haystackLen, start)
	if err != nil {
		b.fatalCheck(err)
		return errs.ToStatus(err)
	}
	if !found {
		return entities.StatusNoMatch
	}
	abi.PutU64(outStart, span.Start)
	abi.PutU64(outEnd, span.End)
	return entities.StatusMatch
}

func (b *Boundary) find(handle uintptr, haystack *byte, haystackLen uint64, start uint64) (entities.Span, bool, error) {
	if handle == NullHandle {
		return entities.Span{}, false, &errs.ValidationError{Argument: "handle"}
	}
	matcher, ok := b.handles.Lookup(handle)
	if !ok {
		return entities.Span{}, false, &errs.ValidationError{Argument: "handle"}
	}
	view, ok := abi.BytesView(haystack, haystackLen)
	if !ok {
		return entities.Span{}, false, &errs.ValidationError{Argument: "haystack"}
	}

	if start > haystackLen {
		start = haystackLen
	}
	span, found := matcher.Find(view, int(start))
	return span, found, nil
}

// fatalCheck keeps a fatal condition from downgrading to a recoverable
// sentinel: a FaultError surfacing through an engine goes to the sink.
func (b *Boundary) fatalCheck(err error) {
	if errs.IsFatal(err) {
		fault.Trap(err.Error())
	}
}
