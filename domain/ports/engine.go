package ports

import "github.com/aifw-dev/regex-shim/domain/entities"

// Engine is the external regex collaborator. Parse and Build are the two
// phases of compilation; each surfaces its own error so the boundary can
// collapse them to the null sentinel independently.
type Engine interface {
	// Parse validates pattern syntax and produces a parsed representation.
	// The pattern is valid UTF-8 by the time it reaches the engine.
	Parse(pattern string) (*entities.ParsedPattern, error)

	// Build compiles a parsed pattern into an executable matcher. Build may
	// fail on resource exhaustion as well as on unsupported constructs.
	Build(parsed *entities.ParsedPattern) (Matcher, error)
}

// Matcher is a compiled automaton. It is immutable after Build returns and
// safe for concurrent Find calls from multiple goroutines.
type Matcher interface {
	// Find performs a leftmost-first search over haystack beginning at the
	// byte offset start, with 0 <= start <= len(haystack). The returned span
	// is in absolute haystack offsets.
	Find(haystack []byte, start int) (entities.Span, bool)
}
