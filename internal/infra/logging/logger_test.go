package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func logPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

func TestLogger_Info(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("tasks", "sync", "test message")

	content, err := os.ReadFile(logPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[tasks]")
	assert.Contains(t, string(content), "[sync]")
	assert.Contains(t, string(content), "test message")
}

func TestLogger_EmptyScopeIsGlobal(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("", "startup", "no scope")

	content, err := os.ReadFile(logPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[global]")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	logger.Debug("tasks", "sync", "debug message")
	logger.Info("tasks", "sync", "info message")
	logger.Warn("tasks", "sync", "warn message")
	logger.Error("tasks", "sync", "error message")

	content, err := os.ReadFile(logPath(dataDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyDataDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Must not panic or create files.
	logger.Info("tasks", "sync", "test message")
	logger.Error("tasks", "sync", "error message")
}

func TestLogger_LogFormat(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("budget", "usecase", `transaction added: "groceries"`)

	content, err := os.ReadFile(logPath(dataDir))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	// Format: [timestamp] [INFO] [budget] [usecase] message
	line := lines[0]
	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "[budget]")
	assert.Contains(t, line, "[usecase]")
	assert.Contains(t, line, `transaction added: "groceries"`)
}

func TestLogger_Close(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)

	logger.Info("tasks", "sync", "test message")

	err := logger.Close()
	assert.NoError(t, err)
	assert.FileExists(t, logPath(dataDir))
}

func TestLogger_CreateLogsDir(t *testing.T) {
	dataDir := t.TempDir()
	logsDir := filepath.Join(dataDir, "logs")

	_, err := os.Stat(logsDir)
	assert.True(t, os.IsNotExist(err))

	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("tasks", "sync", "test message")

	stat, err := os.Stat(logsDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}
