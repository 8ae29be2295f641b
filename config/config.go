// Package config holds the shim's embedder-facing configuration. The
// defaults mirror the original deployment: a 4 MiB arena region sized for a
// single compile-and-search session.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultArenaCapacity is the size of the process-wide arena region.
	DefaultArenaCapacity = 4 * 1024 * 1024

	// DefaultMaxPatternSize bounds the terminator scan for incoming
	// patterns. A pattern with no terminator within this many bytes is
	// rejected as malformed.
	DefaultMaxPatternSize = 1 * 1024 * 1024
)

// validate is a package-level singleton for better performance.
// Creating a new validator on each call is expensive; reusing is recommended.
var validate = validator.New()

// Config describes the tunable limits of the shim. Embedders that accept it
// from an external source should call Validate before use.
type Config struct {
	// ArenaCapacity is the fixed capacity, in bytes, of the arena region.
	ArenaCapacity int `json:"arena_capacity" validate:"gt=0"`

	// MaxPatternSize is the maximum pattern length, in bytes, accepted by
	// compile, excluding the terminator.
	MaxPatternSize int `json:"max_pattern_size" validate:"gt=0"`
}

// Default returns the configuration the shim ships with.
func Default() Config {
	return Config{
		ArenaCapacity:  DefaultArenaCapacity,
		MaxPatternSize: DefaultMaxPatternSize,
	}
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
