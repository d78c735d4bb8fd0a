package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// DeleteClassInput contains the parameters for deleting a class.
type DeleteClassInput struct {
	ID    string
	Owner string // Owner override (optional, falls back to config)
}

// DeleteClassOutput contains the result of deleting a class.
type DeleteClassOutput struct {
	AlreadyGone bool
}

// DeleteClass removes a class remotely and from the roster. A backend 404
// is treated as success.
type DeleteClass struct {
	roster *store.RosterStore
	repo   domain.ScheduleRepository
	config domain.ConfigLoader
	logger domain.Logger
}

// NewDeleteClass creates a new DeleteClass use case.
func NewDeleteClass(
	roster *store.RosterStore,
	repo domain.ScheduleRepository,
	config domain.ConfigLoader,
	logger domain.Logger,
) *DeleteClass {
	return &DeleteClass{
		roster: roster,
		repo:   repo,
		config: config,
		logger: logger,
	}
}

// Execute deletes the class.
func (uc *DeleteClass) Execute(ctx context.Context, in DeleteClassInput) (*DeleteClassOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	out := &DeleteClassOutput{}
	if err := uc.repo.Delete(ctx, in.ID, owner); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		out.AlreadyGone = true
	}

	uc.roster.Remove(in.ID)
	if uc.logger != nil {
		uc.logger.Info("schedule", "delete", fmt.Sprintf("deleted class %s", in.ID))
	}

	return out, nil
}
