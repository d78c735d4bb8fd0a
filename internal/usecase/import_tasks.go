package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// ImportTasksInput contains the parameters for bulk-importing tasks.
type ImportTasksInput struct {
	Path   string // YAML file with one or more task drafts
	Owner  string // Owner override (optional, falls back to config)
	DryRun bool   // Validate only, create nothing
}

// ImportTasksOutput contains the result of a bulk import.
type ImportTasksOutput struct {
	Created []domain.Task // Created tasks in file order (empty on dry run)
	Valid   int           // Number of drafts that passed validation
}

// ImportTasks creates tasks from a YAML draft file. All drafts are validated
// up front; nothing is created if any draft is invalid.
type ImportTasks struct {
	tasks  *store.TaskStore
	repo   domain.TaskRepository
	config domain.ConfigLoader
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(
	tasks *store.TaskStore,
	repo domain.TaskRepository,
	config domain.ConfigLoader,
	logger domain.Logger,
) *ImportTasks {
	return &ImportTasks{
		tasks:  tasks,
		repo:   repo,
		config: config,
		logger: logger,
	}
}

// Execute imports the drafts. Creation is sequential in file order; if one
// create fails, the tasks created so far stay (both remotely and locally)
// and the error identifies the failing draft.
func (uc *ImportTasks) Execute(ctx context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(in.Path)
	if err != nil {
		return nil, fmt.Errorf("read drafts file: %w", err)
	}

	drafts, err := domain.ParseTaskDrafts(string(content))
	if err != nil {
		return nil, err
	}

	limit := notesLimit(cfg)
	payloads := make([]domain.Task, 0, len(drafts))
	for i, draft := range drafts {
		task, err := draft.Form().Validate(limit)
		if err != nil {
			return nil, fmt.Errorf("draft %d: %w", i+1, err)
		}
		task.Owner = owner
		payloads = append(payloads, *task)
	}

	out := &ImportTasksOutput{Valid: len(payloads)}
	if in.DryRun {
		return out, nil
	}

	for i, payload := range payloads {
		created, err := uc.repo.Create(ctx, payload)
		if err != nil {
			return out, fmt.Errorf("create draft %d: %w", i+1, err)
		}
		uc.tasks.Add(created)
		out.Created = append(out.Created, created)
	}

	if uc.logger != nil {
		uc.logger.Info("tasks", "import", fmt.Sprintf("imported %d tasks from %s", len(out.Created), in.Path))
	}

	return out, nil
}
