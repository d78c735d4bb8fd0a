// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/studentlife/campus/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory searched for the local campus.toml
	globalConfDir string // Global config directory (e.g., ~/.config/campus)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "campus")
}

// Load returns the merged configuration (local + global).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.LoadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Start with default config
	base := domain.NewDefaultConfig()

	// Merge: default <- global <- local (later takes precedence)
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the per-directory configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	return l.loadFile(filepath.Join(l.workDir, domain.LocalConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects
// warnings for keys it does not recognize.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "api":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "base_url":
						if s, ok := v.(string); ok {
							res.API.BaseURL = s
						}
					case "timeout_seconds":
						if n, ok := asInt(v); ok {
							res.API.TimeoutSeconds = n
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [api]: %s", k))
					}
				}
			}
		case "owner":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "email":
						if s, ok := v.(string); ok {
							res.Owner.Email = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [owner]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "tasks":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "notes_limit":
						if n, ok := asInt(v); ok {
							res.Tasks.NotesLimit = n
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [tasks]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: [%s]", section))
		}
	}

	res.Warnings = warnings
	return res
}

// asInt normalizes TOML integer decodings.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

// mergeConfigs merges overlay into base. Zero values in overlay leave the
// base value untouched.
func mergeConfigs(base, overlay *domain.Config) *domain.Config {
	if overlay.API.BaseURL != "" {
		base.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.TimeoutSeconds != 0 {
		base.API.TimeoutSeconds = overlay.API.TimeoutSeconds
	}
	if overlay.Owner.Email != "" {
		base.Owner.Email = overlay.Owner.Email
	}
	if overlay.Log.Level != "" {
		base.Log.Level = overlay.Log.Level
	}
	if overlay.Tasks.NotesLimit != 0 {
		base.Tasks.NotesLimit = overlay.Tasks.NotesLimit
	}
	base.Warnings = append(base.Warnings, overlay.Warnings...)
	return base
}
