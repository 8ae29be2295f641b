package engine

import (
	"regexp"
	"regexp/syntax"

	"github.com/aifw-dev/regex-shim/domain/entities"
	errs "github.com/aifw-dev/regex-shim/domain/errors"
	"github.com/aifw-dev/regex-shim/domain/ports"
)

// Compile-time interface compliance check
var _ ports.Engine = stdEngine{}

// NewStd returns the default backend, built on the standard regexp package.
func NewStd() ports.Engine {
	return stdEngine{}
}

type stdEngine struct{}

func (stdEngine) Parse(pattern string) (*entities.ParsedPattern, error) {
	tree, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &errs.SyntaxError{Err: err, Pattern: pattern}
	}
	return &entities.ParsedPattern{Source: pattern, Tree: tree}, nil
}

func (stdEngine) Build(parsed *entities.ParsedPattern) (ports.Matcher, error) {
	re, err := regexp.Compile(parsed.Source)
	if err != nil {
		return nil, &errs.BuildError{Err: err}
	}
	return stdMatcher{re: re}, nil
}

type stdMatcher struct {
	re *regexp.Regexp
}

func (m stdMatcher) Find(haystack []byte, start int) (entities.Span, bool) {
	if start < 0 {
		start = 0
	}
	if start > len(haystack) {
		start = len(haystack)
	}
	loc := m.re.FindIndex(haystack[start:])
	if loc == nil {
		return entities.Span{}, false
	}
	return entities.Span{Start: uint64(loc[0]), End: uint64(loc[1])}.Shift(uint64(start)), true
}
