package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentlife/campus/internal/domain"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoader_Load_DefaultsWhenNoFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, domain.DefaultNotesLimit, cfg.Tasks.NotesLimit)
	assert.Empty(t, cfg.Owner.Email)
}

func TestLoader_Load_GlobalConfig(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `
[api]
base_url = "https://api.campus.example"

[owner]
email = "alice@example.com"
`)

	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)
	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "https://api.campus.example", cfg.API.BaseURL)
	assert.Equal(t, "alice@example.com", cfg.Owner.Email)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds, "unset keys keep defaults")
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `
[api]
base_url = "https://global.example"
timeout_seconds = 30

[log]
level = "debug"
`)

	workDir := t.TempDir()
	writeConfig(t, workDir, domain.LocalConfigFileName, `
[api]
base_url = "https://local.example"
`)

	loader := NewLoaderWithGlobalDir(workDir, globalDir)
	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "https://local.example", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds, "local silence keeps the global value")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_UnknownKeysBecomeWarnings(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, domain.LocalConfigFileName, `
[api]
base_url = "https://local.example"
retries = 3

[colors]
theme = "dark"
`)

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	cfg, err := loader.Load()

	require.NoError(t, err)
	require.Len(t, cfg.Warnings, 2)
	assert.Contains(t, cfg.Warnings, "unknown key in [api]: retries")
	assert.Contains(t, cfg.Warnings, "unknown section: [colors]")
	assert.Equal(t, "https://local.example", cfg.API.BaseURL, "warnings do not block loading")
}

func TestLoader_Load_MalformedTOML(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, domain.LocalConfigFileName, "[api\nbase_url = ")

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	_, err := loader.Load()

	assert.Error(t, err)
}

func TestLoader_Load_NotesLimit(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, domain.LocalConfigFileName, `
[tasks]
notes_limit = 250
`)

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Tasks.NotesLimit)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "campus")
	mgr := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	cfg := domain.NewDefaultConfig()
	cfg.Owner.Email = "alice@example.com"
	require.NoError(t, mgr.InitGlobalConfig(cfg))

	info := mgr.GetGlobalConfigInfo()
	assert.True(t, info.Exists)
	assert.Contains(t, info.Content, `email = "alice@example.com"`)

	// Second init must not clobber the existing file.
	err := mgr.InitGlobalConfig(cfg)
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_GetLocalConfigInfo_Missing(t *testing.T) {
	mgr := NewManagerWithGlobalDir(t.TempDir(), t.TempDir())

	info := mgr.GetLocalConfigInfo()

	assert.False(t, info.Exists)
	assert.Empty(t, info.Content)
}
