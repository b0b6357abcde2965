// Package logging provides structured logging for tagsfn.
//
// Standard output is reserved for per-path results, so CLI logs go to
// standard error.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with the console formatting used by the CLI.
type Logger struct {
	zlog zerolog.Logger
}

// NewLogger creates a console logger writing to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		zlog: zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
		}).With().Timestamp().Logger(),
	}
}

// NewDefaultCLILogger creates a logger writing to stderr.
func NewDefaultCLILogger() *Logger {
	return NewLogger(os.Stderr)
}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// Component returns a child logger tagged with the given component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{
		zlog: l.zlog.With().Str("component", name).Logger(),
	}
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// ParseLevel converts a level name such as "debug" or "WARN" into a
// zerolog level. An empty name means warn.
func ParseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func init() {
	// Results go to stdout; only problems are logged unless asked otherwise.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}
