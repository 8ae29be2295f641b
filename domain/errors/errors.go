// Package errors provides the shim's error taxonomy. Every user-triggerable
// condition is a recoverable error that the boundary collapses to a sentinel
// value (null handle or negative status); only internal-invariant violations
// are fatal, and those are routed to the fault sink rather than returned.
// All error types support unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/aifw-dev/regex-shim/domain/entities"
)

// ValidationError reports a required argument that was null or out of
// contract at the boundary.
type ValidationError struct {
	Argument string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Argument)
}

// EncodingError reports pattern bytes that are not well-formed UTF-8.
type EncodingError struct {
	Length int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("pattern is not valid UTF-8 (%d bytes)", e.Length)
}

// SyntaxError reports a pattern the engine could not parse.
type SyntaxError struct {
	Err     error
	Pattern string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Pattern, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// BuildError reports a parsed pattern the engine could not compile.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build matcher: %v", e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// MemoryError reports arena exhaustion. At the boundary it is
// indistinguishable from a BuildError; callers cannot tell the two apart
// from the return value alone.
type MemoryError struct {
	Requested int
	Remaining int
	Capacity  int
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("arena exhausted: requested %d bytes, %d of %d remaining",
		e.Requested, e.Remaining, e.Capacity)
}

// FaultError describes an internal-invariant violation. It exists so the
// fault sink can carry a reason; it is never returned across the boundary.
type FaultError struct {
	Reason string
}

func (e *FaultError) Error() string {
	return "fault: " + e.Reason
}

// IsFatal reports whether err must be routed to the fault sink instead of
// being converted to a sentinel value.
func IsFatal(err error) bool {
	var fe *FaultError
	return stdErrors.As(err, &fe)
}

// ToStatus maps a recoverable error to the find operation's status code.
// A nil error maps to StatusNoMatch: "no result" is not an error.
func ToStatus(err error) entities.Status {
	if err == nil {
		return entities.StatusNoMatch
	}
	return entities.StatusError
}
