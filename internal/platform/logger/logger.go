// Package logger builds the slog logger every app shares. One factory keeps
// level parsing and output format consistent across the workspace.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls logger construction. Zero value means info-level text
// output on stdout.
type Config struct {
	// Level is one of debug, info, warn, error (case-insensitive).
	Level string
	// Format is "text" or "json".
	Format string
	// Output overrides the destination; nil means os.Stdout.
	Output io.Writer
}

// New returns a logger tagged with the service name.
func New(service string, cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler).With(slog.String("service", service))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
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
