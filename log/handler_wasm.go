//go:build wasip1

package log

import (
	"context"
	"log/slog"
)

// NewHandler creates the guest-side handler. The sandboxed target offers no
// safe diagnostics channel, so every record is discarded.
func NewHandler(opts ...HandlerOption) slog.Handler {
	return discardHandler{}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
