// Package logging builds the slog loggers used by the command line tool.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelSilent is above every standard level and suppresses all records.
const LevelSilent = slog.Level(100)

// New returns a logger writing to w. format is "text" or "json"; anything
// else falls back to text.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelSilent}))
}

// LevelFromString maps debug, info, warn and error (case-insensitive) to
// their slog levels. Unknown names yield warn.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	case "silent", "off":
		return LevelSilent
	default:
		return slog.LevelWarn
	}
}

// LevelFromVerbosity converts the -v count and --quiet into a level.
// quiet wins; 0 keeps fallback, 1 is info, 2 or more is debug.
func LevelFromVerbosity(verbosity int, quiet bool, fallback slog.Level) slog.Level {
	switch {
	case quiet:
		return LevelSilent
	case verbosity <= 0:
		return fallback
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
