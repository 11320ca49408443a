package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a structured logger based on configuration. Logs go to
// stderr; stdout belongs to the interactive menu.
func (c *LoggerConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(c.Level),
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
