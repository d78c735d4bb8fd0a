package domain

import (
	"fmt"
	"time"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// LocalConfigFileName is the per-directory configuration file name.
const LocalConfigFileName = "campus.toml"

// DefaultNotesLimit bounds the free-text notes field on tasks.
const DefaultNotesLimit = 100

// Config represents the application configuration.
type Config struct {
	API      APIConfig   // [api] settings
	Owner    OwnerConfig // [owner] settings
	Log      LogConfig   // [log] settings
	Tasks    TasksConfig // [tasks] settings
	Warnings []string    // Unknown-key warnings collected while loading
}

// APIConfig holds remote backend settings from the [api] section.
type APIConfig struct {
	BaseURL        string // Backend base URL
	TimeoutSeconds int    // Per-request timeout
}

// Timeout returns the configured per-request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// OwnerConfig holds identity settings from the [owner] section. The identity
// itself comes from an external auth provider; only the resolved email is
// carried here.
type OwnerConfig struct {
	Email string
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// TasksConfig holds task settings from the [tasks] section.
type TasksConfig struct {
	NotesLimit int // Maximum notes length accepted by the task form
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// RenderConfigTemplate renders a starter configuration file with the given
// values filled in and the optional keys commented out.
func RenderConfigTemplate(cfg *Config) string {
	return fmt.Sprintf(`# campus configuration

[api]
base_url = %q
# timeout_seconds = %d

[owner]
email = %q

[log]
# level = %q

[tasks]
# notes_limit = %d
`,
		cfg.API.BaseURL,
		cfg.API.TimeoutSeconds,
		cfg.Owner.Email,
		cfg.Log.Level,
		cfg.Tasks.NotesLimit,
	)
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:3000",
			TimeoutSeconds: 15,
		},
		Log: LogConfig{
			Level: "info",
		},
		Tasks: TasksConfig{
			NotesLimit: DefaultNotesLimit,
		},
	}
}
