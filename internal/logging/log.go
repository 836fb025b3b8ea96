// Package logging builds the charmbracelet/log loggers used by the solver
// and carries them through context.Context.
package logging

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger with timestamp formatting. Timestamps are
// formatted as "HH:MM:SS.ms" (e.g. "14:32:01.45").
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel maps a config string to a level. The empty string means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
}

// Progress tracks the start time of an operation and logs completion with
// the elapsed duration. It is meant for a single goroutine.
type Progress struct {
	logger *log.Logger
	start  time.Time
}

// NewProgress starts a timer.
func NewProgress(l *log.Logger) *Progress {
	return &Progress{logger: l, start: time.Now()}
}

// Elapsed returns the time since the progress was created.
func (p *Progress) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Done logs msg with the elapsed time rounded to the millisecond, plus
// any key/value pairs, e.g. "solved (1.234s) value=45".
func (p *Progress) Done(msg string, keyvals ...any) {
	p.logger.Info(msg+" ("+p.Elapsed().Round(time.Millisecond).String()+")", keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Lookup returns the logger attached to ctx, if any.
func Lookup(ctx context.Context) (*log.Logger, bool) {
	l, ok := ctx.Value(loggerKey).(*log.Logger)
	return l, ok
}

// FromContext returns the logger attached to ctx, or log.Default().
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := Lookup(ctx); ok {
		return l
	}
	return log.Default()
}
