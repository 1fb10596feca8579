// Package util holds shared plumbing: the structured logger constructor and
// the mmap-backed document cache used by the build pipeline.
package util

import (
	"io"
	"log/slog"
	"os"
)

// LoggerConfig configures the shared slog constructor.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string

	// Format is "json" or "text". Unknown values mean text.
	Format string

	// Output defaults to stderr so log lines never mix with generated
	// output on stdout (the CLI writes documents there, and the MCP server
	// owns stdout entirely).
	Output io.Writer
}

// NewLogger creates a structured logger. The zero config gives info-level
// text logging on stderr.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
