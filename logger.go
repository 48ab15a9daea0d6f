package photomode

import (
	"log/slog"

	"github.com/gogpu/photomode/focus"
	"github.com/gogpu/photomode/gpu"
	"github.com/gogpu/photomode/internal/logx"
	"github.com/gogpu/photomode/render"
	"github.com/gogpu/photomode/screenshot"
	"github.com/gogpu/photomode/soft"
)

// logger stores the active logger. The zero value discards everything.
var logger logx.Holder

// SetLogger configures the logger for photomode and all its sub-packages.
// By default, photomode produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used by photomode:
//   - [slog.LevelDebug]: capture sizes, pass lists, target allocation
//   - [slog.LevelInfo]: photo mode entered or exited, config reloaded
//   - [slog.LevelWarn]: hook failures, captures without a bound renderer
//
// Example:
//
//	photomode.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	render.SetLogger(l)
	screenshot.SetLogger(l)
	focus.SetLogger(l)
	soft.SetLogger(l)
	gpu.SetLogger(l)
}

// Logger returns the current logger used by photomode.
func Logger() *slog.Logger {
	return logger.Load()
}
