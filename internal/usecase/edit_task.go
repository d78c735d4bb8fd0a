package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// EditTaskInput contains the parameters for editing a task.
type EditTaskInput struct {
	ID    string          // Task to edit
	Owner string          // Owner override (optional, falls back to config)
	Form  domain.TaskForm // Full replacement form (edit flows pre-fill it)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task domain.Task // The updated task as returned by the backend
}

// EditTask validates an edited form and pushes the changes to the backend.
//
// Concurrent edits follow last-write-wins: whatever reaches the backend
// last is the state everyone converges on after their next sync.
type EditTask struct {
	tasks  *store.TaskStore
	repo   domain.TaskRepository
	config domain.ConfigLoader
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(
	tasks *store.TaskStore,
	repo domain.TaskRepository,
	config domain.ConfigLoader,
	logger domain.Logger,
) *EditTask {
	return &EditTask{
		tasks:  tasks,
		repo:   repo,
		config: config,
		logger: logger,
	}
}

// Execute updates a task. If the backend reports the task gone, the stale
// local copy is removed so the store reconverges, and ErrNotFound is
// returned for the caller to surface.
func (uc *EditTask) Execute(ctx context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	task, err := in.Form.Validate(notesLimit(cfg))
	if err != nil {
		return nil, err
	}

	patch := domain.TaskPatch{
		Subject:  &task.Subject,
		Topic:    &task.Topic,
		Priority: &task.Priority,
		Deadline: &task.Deadline,
		TimeSlot: &task.TimeSlot,
		Notes:    &task.Notes,
		Duration: &task.Duration,
	}

	updated, err := uc.repo.Update(ctx, in.ID, owner, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.tasks.Remove(in.ID)
			if uc.logger != nil {
				uc.logger.Warn("tasks", "edit", fmt.Sprintf("task %s no longer exists remotely, removed locally", in.ID))
			}
		}
		return nil, err
	}

	uc.tasks.Replace(in.ID, updated)
	if uc.logger != nil {
		uc.logger.Info("tasks", "edit", fmt.Sprintf("updated task %s", in.ID))
	}

	return &EditTaskOutput{Task: updated}, nil
}
