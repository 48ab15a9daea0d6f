// Package logx holds the silent-by-default slog plumbing shared by the
// photomode packages.
package logx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Nop returns a logger that discards all output.
func Nop() *slog.Logger { return slog.New(nopHandler{}) }

// Holder stores a logger atomically. The zero value logs nothing.
type Holder struct {
	p atomic.Pointer[slog.Logger]
}

// Load returns the stored logger, or a nop logger if none was stored.
func (h *Holder) Load() *slog.Logger {
	if l := h.p.Load(); l != nil {
		return l
	}
	return Nop()
}

// Store replaces the logger. Nil restores the silent default.
func (h *Holder) Store(l *slog.Logger) {
	if l == nil {
		l = Nop()
	}
	h.p.Store(l)
}
