package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/mesto-api/internal/config"
)

func TestSetup(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "nonsense"} {
		t.Run(level, func(t *testing.T) {
			logger := Setup(config.ServerConfig{Port: 3000, LogLevel: level})
			require.NotNil(t, logger)
			assert.Same(t, logger, slog.Default(), "Setup should install the logger as default")
		})
	}
}

func TestSetupLevels(t *testing.T) {
	logger := Setup(config.ServerConfig{Port: 3000, LogLevel: "warn"})

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
	assert.True(t, logger.Enabled(ctx, slog.LevelError))
}

func TestWithLoggerAndFromContext(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(testWriter{}, nil))

	ctx := WithLogger(context.Background(), custom)
	assert.Same(t, custom, FromContext(ctx))

	// A bare context falls back to the default logger.
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestFromContextOrDefault(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(testWriter{}, nil))
	fallback := slog.New(slog.NewTextHandler(testWriter{}, nil))

	ctx, bare := WithLogger(context.Background(), custom), context.Background()
	assert.Same(t, custom, FromContextOrDefault(ctx, fallback))
	assert.Same(t, fallback, FromContextOrDefault(bare, fallback))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }
