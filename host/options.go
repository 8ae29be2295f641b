package host

import (
	"log/slog"

	"github.com/tetratelabs/wazero"

	"github.com/aifw-dev/regex-shim/config"
	"github.com/aifw-dev/regex-shim/log"
)

type libraryConfig struct {
	moduleName    string
	runtimeConfig wazero.RuntimeConfig
	logger        *slog.Logger
	limits        config.Config
}

func defaultLibraryConfig() libraryConfig {
	return libraryConfig{
		moduleName:    "aifw_regex",
		runtimeConfig: wazero.NewRuntimeConfig(),
		logger:        log.NewLogger(),
		limits:        config.Default(),
	}
}

// Option configures a Library.
type Option func(*libraryConfig)

// WithModuleName sets the instantiated module name (default: "aifw_regex").
func WithModuleName(name string) Option {
	return func(c *libraryConfig) {
		c.moduleName = name
	}
}

// WithRuntimeConfig replaces the wazero runtime configuration, e.g. to force
// the interpreter on platforms without compiler support.
func WithRuntimeConfig(cfg wazero.RuntimeConfig) Option {
	return func(c *libraryConfig) {
		c.runtimeConfig = cfg
	}
}

// WithConfig replaces the shim limits. Open validates the configuration and
// fails on one that does not pass config.Validate. The pattern cap is
// enforced host-side before any guest memory is staged; the arena capacity
// is informational here, since the guest's region is fixed at its build.
func WithConfig(cfg config.Config) Option {
	return func(c *libraryConfig) {
		c.limits = cfg
	}
}

// WithLogger sets the logger used for load and call diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *libraryConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
