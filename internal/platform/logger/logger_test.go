package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/santosferr/ledger-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	// Preserve the process default logger across test cases.
	oldDefault := slog.Default()
	defer slog.SetDefault(oldDefault)

	tests := []struct {
		name     string
		logLevel string
		// enabledAt is a level the configured logger must report as enabled
		enabledAt slog.Level
		// disabledAt is a level the configured logger must report as disabled,
		// or a negative sentinel when every level is enabled
		disabledAt slog.Level
		checkBoth  bool
	}{
		{name: "debug", logLevel: "debug", enabledAt: slog.LevelDebug},
		{name: "info", logLevel: "info", enabledAt: slog.LevelInfo, disabledAt: slog.LevelDebug, checkBoth: true},
		{name: "warn", logLevel: "warn", enabledAt: slog.LevelWarn, disabledAt: slog.LevelInfo, checkBoth: true},
		{name: "error", logLevel: "error", enabledAt: slog.LevelError, disabledAt: slog.LevelWarn, checkBoth: true},
		{name: "mixed case", logLevel: "WARN", enabledAt: slog.LevelWarn, disabledAt: slog.LevelInfo, checkBoth: true},
		{name: "invalid falls back to info", logLevel: "verbose", enabledAt: slog.LevelInfo, disabledAt: slog.LevelDebug, checkBoth: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tc.enabledAt))
			if tc.checkBoth {
				assert.False(t, logger.Enabled(ctx, tc.disabledAt))
			}

			// Setup installs the logger as the process default.
			assert.Equal(t, logger.Enabled(ctx, slog.LevelError), slog.Default().Enabled(ctx, slog.LevelError))
		})
	}
}

func TestWithLoggerAndFromContext(t *testing.T) {
	t.Parallel()

	custom := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "test")
	ctx := WithLogger(context.Background(), custom)

	assert.Same(t, custom, FromContext(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), FromContext(context.Background()))

	//nolint:staticcheck // exercising the nil-context guard on purpose
	assert.Same(t, slog.Default(), FromContext(nil))
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	def := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("context logger wins", func(t *testing.T) {
		custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := WithLogger(context.Background(), custom)
		assert.Same(t, custom, FromContextOrDefault(ctx, def))
	})

	t.Run("default used when context is bare", func(t *testing.T) {
		assert.Same(t, def, FromContextOrDefault(context.Background(), def))
	})

	t.Run("nil default falls back to slog default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
	})
}
