package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(t *testing.T, cfg Config) (*Logger, *bytes.Buffer) {
	t.Helper()

	output := &bytes.Buffer{}
	cfg.writer = output

	logger, err := New(&cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)

	return logger, output
}

func TestNew(t *testing.T) {
	t.Run("json format emits structured entries", func(t *testing.T) {
		logger, output := newBufferedLogger(t, Config{
			Level:  "debug",
			Format: "json",
		})

		logger.Debug("pipeline stage started", slog.String("stage", "EXTRACTING"))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(output.Bytes(), &entry))

		assert.Equal(t, "DEBUG", entry["level"])
		assert.Equal(t, "pipeline stage started", entry["msg"])
		assert.Equal(t, "EXTRACTING", entry["stage"])
		assert.Contains(t, entry, "time")
	})

	t.Run("level threshold suppresses lower levels", func(t *testing.T) {
		logger, output := newBufferedLogger(t, Config{
			Level:  "warn",
			Format: "json",
		})

		logger.Debug("dropped")
		logger.Info("also dropped")
		logger.Warn("kept", slog.String("reason", "slow transcode"))

		lines := strings.Split(strings.TrimSpace(output.String()), "\n")
		require.Len(t, lines, 1)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "kept", entry["msg"])
		assert.Equal(t, "slow transcode", entry["reason"])
	})

	t.Run("console format uses tint", func(t *testing.T) {
		logger, output := newBufferedLogger(t, Config{
			Level:      "info",
			Format:     "console",
			TimeFormat: time.RFC3339,
		})

		logger.Info("summary persisted")

		// tint renders the level as "INF"
		assert.Contains(t, output.String(), "INF")
		assert.Contains(t, output.String(), "summary persisted")
	})

	t.Run("source location attached when enabled", func(t *testing.T) {
		logger, output := newBufferedLogger(t, Config{
			Level:        "info",
			Format:       "json",
			EnableSource: true,
		})

		logger.Info("with source")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(output.Bytes(), &entry))
		require.Contains(t, entry, "source")

		source := entry["source"].(map[string]interface{})
		assert.Contains(t, source, "function")
		assert.Contains(t, source, "file")
		assert.Contains(t, source, "line")
	})
}

func TestNewDefault(t *testing.T) {
	logger := NewDefault()
	require.NotNil(t, logger)
	assert.NotNil(t, logger.Logger)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		// parseLevel is case-sensitive; anything unrecognized is info
		{"DEBUG", slog.LevelInfo},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestLogger_With(t *testing.T) {
	logger, output := newBufferedLogger(t, Config{
		Level:  "info",
		Format: "json",
	})

	jobLogger := logger.With(
		slog.String("summary_id", "0b9d3a5e"),
		slog.String("user_id", "user-42"),
	)
	require.NotNil(t, jobLogger)

	jobLogger.Info("transcription complete")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &entry))
	assert.Equal(t, "0b9d3a5e", entry["summary_id"])
	assert.Equal(t, "user-42", entry["user_id"])
	assert.Equal(t, "transcription complete", entry["msg"])
}

func TestLogger_WithGroup(t *testing.T) {
	logger, output := newBufferedLogger(t, Config{
		Level:  "info",
		Format: "json",
	})

	grouped := logger.WithGroup("pipeline")
	require.NotNil(t, grouped)

	grouped.Info("stage finished", slog.String("stage", "UPLOADING"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &entry))
	require.Contains(t, entry, "pipeline")

	group := entry["pipeline"].(map[string]interface{})
	assert.Equal(t, "UPLOADING", group["stage"])
}

func TestLogger_WithAttrs(t *testing.T) {
	logger, output := newBufferedLogger(t, Config{
		Level:  "info",
		Format: "json",
	})

	attrLogger := logger.WithAttrs(
		slog.String("service", "vidbrief-api"),
		slog.Int("attempt", 1),
	)
	require.NotNil(t, attrLogger)

	attrLogger.Info("request handled")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &entry))
	assert.Equal(t, "vidbrief-api", entry["service"])
	assert.Equal(t, float64(1), entry["attempt"]) // JSON numbers decode as float64
}
