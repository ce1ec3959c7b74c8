// Package log provides leveled logging interface.
// The log messages are intended to be user-facing
// similar to the standard library's log package.
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// Logger is a leveled logger.
type Logger struct{ *slog.Logger }

// New builds a logger that writes plain text to the given writer,
// dropping messages below lvl.
func New(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{W: w, Level: lvl, mu: new(sync.Mutex)})}
}

// NewTerminal is like New, but it highlights levels and attribute names
// with ANSI escape codes. Use it when w is a terminal.
func NewTerminal(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{W: w, Level: lvl, Color: true, mu: new(sync.Mutex)})}
}

// WithName builds a new logger with the provided name. Attributes logged
// through the new logger are prefixed with the name. The returned logger
// is safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	out := *l
	out.Logger = l.WithGroup(name)
	return &out
}

// With builds a new logger that adds the given attributes to every message.
func (l *Logger) With(args ...any) *Logger {
	out := *l
	out.Logger = l.Logger.With(args...)
	return &out
}
