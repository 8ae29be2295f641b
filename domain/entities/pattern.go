package entities

import "regexp/syntax"

// ParsedPattern is the output of the engine's parse step and the input to
// its build step. Source is the validated UTF-8 pattern text; Tree is the
// syntax tree produced during parsing. Backends that compile directly from
// source may leave Tree unused but it is always populated by Parse.
type ParsedPattern struct {
	Source string
	Tree   *syntax.Regexp
}
