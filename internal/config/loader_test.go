package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies the baseline config with no file and no
// environment.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.BatchLimit)
	assert.Empty(t, cfg.MetricsAddr)
	assert.False(t, cfg.IndentOutput)
}

// TestLoad_Layers verifies that the file overrides defaults and the
// environment overrides the file.
func TestLoad_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nbatch_limit: 8\n"), 0o600))
	t.Setenv("BENCHRANK_CONFIG", path)
	t.Setenv("BENCHRANK_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 8, cfg.BatchLimit)
}

// TestLoad_Validation covers the rejected shapes.
func TestLoad_Validation(t *testing.T) {
	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("BENCHRANK_LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative batch limit", func(t *testing.T) {
		t.Setenv("BENCHRANK_BATCH_LIMIT", "-1")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("BENCHRANK_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := Load()
		assert.Error(t, err)
	})
}

// TestSlogLevel maps every accepted level.
func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
	}
	for _, tt := range tests {
		level, err := (&Config{LogLevel: tt.in}).SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, tt.want, level)
	}
}
