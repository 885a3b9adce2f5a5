// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, and carries a request-scoped logger through
// context.Context.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/mesto-api/internal/config"
)

// contextKey is a private type for the logger context key.
type contextKey struct{}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
func Setup(cfg config.ServerConfig) *slog.Logger {
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

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	// Set this logger as the default so slog package functions use it too.
	slog.SetDefault(logger)

	return logger
}

// WithLogger returns a new context that carries the given logger.
// Middleware uses this to attach a request-scoped logger (e.g. with a
// trace ID) for handlers and services further down the chain.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext retrieves the logger carried by the context, or the process
// default logger when the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger carried by the context, falling
// back to the provided logger rather than the process default.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}
