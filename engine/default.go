//go:build !re2 || wasip1

package engine

import "github.com/aifw-dev/regex-shim/domain/ports"

// New returns the engine for this build: the default regexp backend.
func New() ports.Engine {
	return NewStd()
}
