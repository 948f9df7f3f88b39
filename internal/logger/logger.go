// Package logger configures the process-wide slog logger. Output is
// JSON on stdout so log lines can be shipped straight into an
// aggregator.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default logger at the given level. Source
// locations are attached to every record.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})))
}

// ParseLevel maps a level name to its slog.Level. Matching is
// case-insensitive; anything unrecognized falls back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
