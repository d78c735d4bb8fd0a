// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/studentlife/campus/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	workDir       string // Directory holding the local campus.toml
	globalConfDir string // Global config directory (e.g., ~/.config/campus)
}

// NewManager creates a new Manager.
func NewManager(workDir string) *Manager {
	return &Manager{
		workDir:       workDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config
// directory. This is useful for testing.
func NewManagerWithGlobalDir(workDir, globalConfDir string) *Manager {
	return &Manager{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// GetLocalConfigInfo returns information about the local config file.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	path := filepath.Join(m.workDir, domain.LocalConfigFileName)
	return m.getConfigInfo(path)
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{
			Path:   "",
			Exists: false,
		}
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)
	return m.getConfigInfo(path)
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitLocalConfig creates a campus.toml in the working directory.
func (m *Manager) InitLocalConfig(cfg *domain.Config) error {
	path := filepath.Join(m.workDir, domain.LocalConfigFileName)
	return m.initConfig(path, cfg)
}

// InitGlobalConfig creates the global config file with a default template.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	if err := os.MkdirAll(m.globalConfDir, 0700); err != nil {
		return err
	}

	return m.initConfig(path, cfg)
}

// initConfig creates a config file with a default template.
func (m *Manager) initConfig(path string, cfg *domain.Config) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	content := domain.RenderConfigTemplate(cfg)

	return os.WriteFile(path, []byte(content), 0600)
}
