// Package logger provides structured logging for the application: a JSON
// slog logger configured from server settings, plus helpers to carry a
// request-scoped logger through a context.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/mplath/tasknest/internal/config"
)

// contextKey is the private type for the logger context key.
type contextKey struct{}

var loggerKey = contextKey{}

// Setup initializes the application's logging based on the provided
// configuration: a structured JSON logger writing to stdout at the
// configured level, installed as the slog default.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo

		tmp := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmp.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler)
	slog.SetDefault(log)

	return log, nil
}

// WithLogger returns a context carrying the given logger.
// Panics when log is nil; a nil logger in a context is always a wiring bug.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if log == nil {
		panic("logger cannot be nil")
	}
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger stored in ctx, or the slog default when
// the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger stored in ctx, falling back to
// the provided default. Useful for components that carry their own child
// logger.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if ctx == nil {
		return def
	}
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return def
}
