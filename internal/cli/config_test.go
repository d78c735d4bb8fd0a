package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentlife/campus/internal/domain"
)

func TestConfigInitLocal(t *testing.T) {
	d := newTestDeps(t)

	out := mustRun(t, d, "config", "init", "--local", "--email", "bob@example.com")

	path := filepath.Join(d.container.Config.WorkDir, domain.LocalConfigFileName)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `email = "bob@example.com"`)

	// A second init must not overwrite the existing file
	_, err = runCommand(t, d, "config", "init", "--local")
	require.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfigShow(t *testing.T) {
	d := newTestDeps(t)

	out := mustRun(t, d, "config", "show")

	assert.Contains(t, out, "[Loaded from]")
	assert.Contains(t, out, "(not found)")
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, `email = 'alice@example.com'`)
	assert.Contains(t, out, "base_url")
}
