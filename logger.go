package enclose

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false, so disabled
// calls skip attribute formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger. Build loads it once per call, so a
// concurrent SetLogger affects later builds only.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger used by Build, the pipeline stages and queries.
// enclose is silent until SetLogger is called; nil restores silence.
//
// Records at [slog.LevelInfo] summarize each built region (grid size and
// cell counts). Records at [slog.LevelDebug] come from the individual
// stages and carry a "stage" attribute ("raster" or "fill"), plus the
// results of MaxArea and MaxEnclosedArea.
//
//	enclose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// stageLogger tags records from one pipeline stage.
func stageLogger(l *slog.Logger, stage string) *slog.Logger {
	return l.With("stage", stage)
}
