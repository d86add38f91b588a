package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leengari/mini-dataframe/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestSetupLoggerConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := setupLogger(config.LoggingConfig{Level: "info"}, &buf)
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("table loaded", "table", "df0", "rows", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "table loaded")
	assert.Contains(t, out, "table=df0")
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(h).With("session", "s1")
	logger.Info("only first")
	logger.Warn("both")

	assert.Contains(t, a.String(), "only first")
	assert.Contains(t, a.String(), "both")
	assert.NotContains(t, b.String(), "only first")
	assert.Contains(t, b.String(), "session=s1")
}
