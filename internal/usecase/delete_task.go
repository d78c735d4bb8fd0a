package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	ID    string // Task to delete
	Owner string // Owner override (optional, falls back to config)
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	AlreadyGone bool // True when the backend had already removed the task
}

// DeleteTask removes a task remotely and from the store. A backend 404 is
// treated as success: the desired end state (task gone) already holds.
type DeleteTask struct {
	tasks  *store.TaskStore
	repo   domain.TaskRepository
	config domain.ConfigLoader
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(
	tasks *store.TaskStore,
	repo domain.TaskRepository,
	config domain.ConfigLoader,
	logger domain.Logger,
) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		repo:   repo,
		config: config,
		logger: logger,
	}
}

// Execute deletes the task.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	out := &DeleteTaskOutput{}
	if err := uc.repo.Delete(ctx, in.ID, owner); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		out.AlreadyGone = true
		if uc.logger != nil {
			uc.logger.Info("tasks", "delete", fmt.Sprintf("task %s already gone remotely", in.ID))
		}
	}

	uc.tasks.Remove(in.ID)
	if uc.logger != nil && !out.AlreadyGone {
		uc.logger.Info("tasks", "delete", fmt.Sprintf("deleted task %s", in.ID))
	}

	return out, nil
}
