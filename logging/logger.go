package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger. Every method is nil-receiver safe: a nil
// *Logger silently discards all calls, so callers never need a separate
// "logging enabled" branch.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to w (os.Stderr if w is nil). When pretty is
// true, output goes through zerolog's human-readable ConsoleWriter; when w
// is an *os.File, color is routed through go-colorable (so it survives on
// Windows consoles) and auto-disabled when go-isatty reports w is not a
// terminal. When pretty is false, output is newline-delimited JSON,
// suitable for log aggregation.
func New(w io.Writer, pretty bool) *Logger {
	if w == nil {
		w = os.Stderr
	}

	var out io.Writer = w
	if pretty {
		cw := zerolog.ConsoleWriter{Out: w}
		if f, ok := w.(*os.File); ok {
			cw.Out = colorable.NewColorable(f)
			cw.NoColor = !isatty.IsTerminal(f.Fd())
		} else {
			cw.NoColor = true
		}
		out = cw
	}

	return &Logger{zl: zerolog.New(out).With().Timestamp().Logger()}
}

// WithRun derives a child Logger tagged with a fresh run identifier,
// returning both the child and the identifier string so callers can
// correlate a run's log lines (useful when BatchSolve races several
// attempts concurrently). Safe to call on a nil Logger: returns nil and a
// freshly generated id.
func (l *Logger) WithRun() (*Logger, string) {
	id := uuid.NewString()
	if l == nil {
		return nil, id
	}

	return &Logger{zl: l.zl.With().Str("run_id", id).Logger()}, id
}

// Debug logs a debug-level event with the given message and key/value
// fields. No-op on a nil Logger.
func (l *Logger) Debug(msg string, fields map[string]any) { l.log(zerolog.DebugLevel, msg, fields) }

// Info logs an info-level event. No-op on a nil Logger.
func (l *Logger) Info(msg string, fields map[string]any) { l.log(zerolog.InfoLevel, msg, fields) }

// Warn logs a warn-level event. No-op on a nil Logger.
func (l *Logger) Warn(msg string, fields map[string]any) { l.log(zerolog.WarnLevel, msg, fields) }

func (l *Logger) log(level zerolog.Level, msg string, fields map[string]any) {
	if l == nil {
		return
	}
	ev := l.zl.WithLevel(level)
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
