package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_NilContext(t *testing.T) {
	logger := FromContext(nil) //nolint:staticcheck // Testing nil guard intentionally
	assert.NotNil(t, logger)
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	assert.NotNil(t, logger)
}

func TestWithContext_RoundTrip(t *testing.T) {
	customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithContext(context.Background(), customLogger)

	assert.Equal(t, customLogger, FromContext(ctx))
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithContext(context.Background(), logger)
	ctx = WithRequestID(ctx, "req-123")

	FromContext(ctx).InfoContext(ctx, "test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
}

func TestWithCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithContext(context.Background(), logger)
	ctx = WithCorrelationID(ctx, "corr-789")

	FromContext(ctx).InfoContext(ctx, "test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "corr-789", entry["correlation_id"])
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{
		Level:   "info",
		Format:  "json",
		Service: "quotekeeper",
		Version: "test",
	}, &buf)

	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "quotekeeper", entry["service_name"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestNewWithWriter_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{
		Level:  "info",
		Format: "pretty",
	}, &buf)

	logger.Info("pretty message")

	assert.Contains(t, buf.String(), "pretty message")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{
		Level:  "warn",
		Format: "json",
	}, &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewWithWriter_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{
		Level:  "info",
		Format: "json",
	}, &buf)

	logger.Info("connecting",
		slog.String("password", "hunter2"),
		slog.String("dsn", "user:hunter2@tcp(localhost:3306)/quotekeeper"),
	)

	assert.NotContains(t, buf.String(), "hunter2")
}

func TestNewWithWriter_FileSink(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")

	var buf bytes.Buffer
	logger := NewWithWriter(Config{
		Level:  "info",
		Format: "text",
		File: FileConfig{
			Enabled:   true,
			Path:      logPath,
			MaxSizeMB: 1,
		},
	}, &buf)

	logger.Info("written to both")

	assert.Contains(t, buf.String(), "written to both")
	assert.FileExists(t, logPath)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestMultiHandler_FansOut(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&buf1, nil),
		slog.NewJSONHandler(&buf2, nil),
	)

	slog.New(handler).Info("fan out")

	assert.Contains(t, buf1.String(), "fan out")
	assert.Contains(t, buf2.String(), "fan out")
}

func TestMultiHandler_EnabledWhenAnyEnabled(t *testing.T) {
	handler := NewMultiHandler(
		slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
}
