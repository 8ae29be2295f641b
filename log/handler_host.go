//go:build !wasip1

package log

import (
	"log/slog"
	"os"
)

// NewHandler creates the host-side handler: text output on stderr.
func NewHandler(opts ...HandlerOption) slog.Handler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.addSource,
	})
}
