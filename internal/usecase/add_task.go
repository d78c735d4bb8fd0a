package usecase

import (
	"context"
	"fmt"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// AddTaskInput contains the parameters for creating a task.
type AddTaskInput struct {
	Form  domain.TaskForm // Raw form input, validated before any network call
	Owner string          // Owner override (optional, falls back to config)
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task domain.Task // The created task with its server-assigned ID
}

// AddTask validates a task form, persists the task remotely, and appends it
// to the in-memory store.
type AddTask struct {
	tasks  *store.TaskStore
	repo   domain.TaskRepository
	config domain.ConfigLoader
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(
	tasks *store.TaskStore,
	repo domain.TaskRepository,
	config domain.ConfigLoader,
	logger domain.Logger,
) *AddTask {
	return &AddTask{
		tasks:  tasks,
		repo:   repo,
		config: config,
		logger: logger,
	}
}

// Execute creates a task. Validation failures return a ValidationError and
// nothing is sent to the backend.
func (uc *AddTask) Execute(ctx context.Context, in AddTaskInput) (*AddTaskOutput, error) {
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
	task.Owner = owner

	created, err := uc.repo.Create(ctx, *task)
	if err != nil {
		return nil, err
	}

	uc.tasks.Add(created)
	if uc.logger != nil {
		uc.logger.Info("tasks", "create", fmt.Sprintf("created task %s (%s / %s)", created.ID, created.Subject, created.Topic))
	}

	return &AddTaskOutput{Task: created}, nil
}
