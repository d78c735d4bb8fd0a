// Package usecase contains the application operations, one type per
// operation. Each use case receives its dependencies on construction and
// exposes a single Execute method taking an Input and returning an Output.
package usecase

import (
	"github.com/studentlife/campus/internal/domain"
)

// resolveOwner picks the acting user: an explicit override wins, otherwise
// the configured owner.email is used.
func resolveOwner(cfg *domain.Config, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if cfg != nil && cfg.Owner.Email != "" {
		return cfg.Owner.Email, nil
	}
	return "", domain.ErrNoOwner
}

// notesLimit returns the configured notes length bound.
func notesLimit(cfg *domain.Config) int {
	if cfg != nil && cfg.Tasks.NotesLimit > 0 {
		return cfg.Tasks.NotesLimit
	}
	return domain.DefaultNotesLimit
}
