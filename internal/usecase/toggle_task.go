package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// ToggleTaskInput contains the parameters for toggling task completion.
type ToggleTaskInput struct {
	ID    string // Task to toggle
	Owner string // Owner override (optional, falls back to config)
}

// ToggleTaskOutput contains the result of toggling task completion.
type ToggleTaskOutput struct {
	Task domain.Task // The task with its new completion state
}

// ToggleTask flips a task's completed flag remotely and mirrors the result
// into the store.
type ToggleTask struct {
	tasks  *store.TaskStore
	repo   domain.TaskRepository
	config domain.ConfigLoader
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(
	tasks *store.TaskStore,
	repo domain.TaskRepository,
	config domain.ConfigLoader,
	logger domain.Logger,
) *ToggleTask {
	return &ToggleTask{
		tasks:  tasks,
		repo:   repo,
		config: config,
		logger: logger,
	}
}

// Execute toggles completion. The task must be present in the store (sync
// first). A remote ErrNotFound removes the stale local copy.
func (uc *ToggleTask) Execute(ctx context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	current, ok := uc.tasks.Get(in.ID)
	if !ok {
		return nil, fmt.Errorf("task %s: %w", in.ID, domain.ErrNotFound)
	}

	next := !current.Completed
	updated, err := uc.repo.Update(ctx, in.ID, owner, domain.TaskPatch{Completed: &next})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.tasks.Remove(in.ID)
			if uc.logger != nil {
				uc.logger.Warn("tasks", "toggle", fmt.Sprintf("task %s no longer exists remotely, removed locally", in.ID))
			}
		}
		return nil, err
	}

	uc.tasks.Replace(in.ID, updated)
	if uc.logger != nil {
		state := "pending"
		if updated.Completed {
			state = "completed"
		}
		uc.logger.Info("tasks", "toggle", fmt.Sprintf("task %s marked %s", in.ID, state))
	}

	return &ToggleTaskOutput{Task: updated}, nil
}
