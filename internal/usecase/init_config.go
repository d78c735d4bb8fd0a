package usecase

import (
	"context"

	"github.com/studentlife/campus/internal/domain"
)

// InitConfigInput contains the parameters for initializing configuration.
type InitConfigInput struct {
	Email string // Pre-fills owner.email in the template
	Local bool   // Write ./campus.toml instead of the global file
}

// InitConfigOutput contains the result of initializing configuration.
type InitConfigOutput struct {
	Path string // Path of the created file
}

// InitConfig writes a starter configuration file.
type InitConfig struct {
	manager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(manager domain.ConfigManager) *InitConfig {
	return &InitConfig{manager: manager}
}

// Execute writes the config file. Returns ErrConfigExists if one is already
// present at the target location.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	cfg := domain.NewDefaultConfig()
	cfg.Owner.Email = in.Email

	if in.Local {
		if err := uc.manager.InitLocalConfig(cfg); err != nil {
			return nil, err
		}
		return &InitConfigOutput{Path: uc.manager.GetLocalConfigInfo().Path}, nil
	}

	if err := uc.manager.InitGlobalConfig(cfg); err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: uc.manager.GetGlobalConfigInfo().Path}, nil
}
