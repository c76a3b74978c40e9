// Package log wraps log/slog with level and format selection.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger is a thin slog wrapper shared by the CLI and the runner.
type Logger struct {
	*slog.Logger
}

// Config selects verbosity and output encoding.
type Config struct {
	Level  string // debug | info | warn | error
	Format string // text | json
}

// New creates a Logger writing to stderr so run output on stdout stays clean.
func New(cfg Config) *Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer, cfg Config) *Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	}
	return &Logger{Logger: slog.New(h)}
}

// Discard returns a Logger that drops everything. Useful in tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))}
}
