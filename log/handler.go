// Package log provides structured logging (slog) for the shim's two build
// targets. Host-side bindings log to stderr; guest builds get a discard
// handler because the sandboxed target has no diagnostics channel and
// nothing may be written across the foreign boundary.
package log

import "log/slog"

// HandlerOption configures the handler returned by NewHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Level
	addSource bool
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level: slog.LevelInfo,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// NewLogger returns a slog.Logger backed by the platform handler.
func NewLogger(opts ...HandlerOption) *slog.Logger {
	return slog.New(NewHandler(opts...))
}
