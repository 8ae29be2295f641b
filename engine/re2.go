//go:build re2 && !wasip1

package engine

import (
	"regexp/syntax"

	re2 "github.com/wasilibs/go-re2"

	"github.com/aifw-dev/regex-shim/domain/entities"
	errs "github.com/aifw-dev/regex-shim/domain/errors"
	"github.com/aifw-dev/regex-shim/domain/ports"
)

// New returns the engine for this build: the RE2 backend. It is selected
// with the "re2" build tag and only available to native host builds; the
// sandboxed guest cannot carry a nested runtime.
func New() ports.Engine {
	return re2Engine{}
}

type re2Engine struct{}

func (re2Engine) Parse(pattern string) (*entities.ParsedPattern, error) {
	// RE2 compiles straight from source; parse here is the syntax check.
	tree, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &errs.SyntaxError{Err: err, Pattern: pattern}
	}
	return &entities.ParsedPattern{Source: pattern, Tree: tree}, nil
}

func (re2Engine) Build(parsed *entities.ParsedPattern) (ports.Matcher, error) {
	re, err := re2.Compile(parsed.Source)
	if err != nil {
		return nil, &errs.BuildError{Err: err}
	}
	return re2Matcher{re: re}, nil
}

type re2Matcher struct {
	re *re2.Regexp
}

func (m re2Matcher) Find(haystack []byte, start int) (entities.Span, bool) {
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
