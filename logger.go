package kanvas

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute construction entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for kanvas and its sub-packages.
// By default kanvas produces no log output. Pass nil to restore silence.
//
// Log levels used by kanvas:
//   - [slog.LevelDebug]: per-shape draw and destroy
//   - [slog.LevelInfo]: canvas initialization and display reset
//   - [slog.LevelWarn]: ignored lifecycle transitions
//
// Example:
//
//	kanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (scene, recording) call
// this to share one configuration. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
