package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// SyncTasksInput contains the parameters for syncing tasks.
type SyncTasksInput struct {
	Owner         string // Owner override (optional, falls back to config)
	AllowSnapshot bool   // Fall back to the local snapshot when the backend is unreachable
}

// SyncTasksOutput contains the result of syncing tasks.
// Fields are ordered to minimize memory padding.
type SyncTasksOutput struct {
	SyncedAt     time.Time     // When this data was fetched (or originally snapshotted)
	Tasks        []domain.Task // Tasks now held in the store
	FromSnapshot bool          // True when served from the local snapshot
}

// SyncTasks replaces the in-memory task list with the backend's state for
// the current owner, updating the local snapshot on success.
type SyncTasks struct {
	tasks    *store.TaskStore
	repo     domain.TaskRepository
	snapshot domain.Snapshotter
	config   domain.ConfigLoader
	clock    domain.Clock
	logger   domain.Logger
}

// NewSyncTasks creates a new SyncTasks use case.
func NewSyncTasks(
	tasks *store.TaskStore,
	repo domain.TaskRepository,
	snapshot domain.Snapshotter,
	config domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *SyncTasks {
	return &SyncTasks{
		tasks:    tasks,
		repo:     repo,
		snapshot: snapshot,
		config:   config,
		clock:    clock,
		logger:   logger,
	}
}

// Execute fetches the owner's tasks. On a fetch failure the store keeps its
// previous state; if AllowSnapshot is set and a local snapshot exists for
// this owner, the store is seeded from it instead.
func (uc *SyncTasks) Execute(ctx context.Context, in SyncTasksInput) (*SyncTasksOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	if err := uc.tasks.Load(ctx, uc.repo, owner); err != nil {
		if in.AllowSnapshot && uc.snapshot != nil {
			if tasks, syncedAt, snapErr := uc.snapshot.LoadTasks(owner); snapErr == nil {
				uc.tasks.Restore(owner, tasks)
				if uc.logger != nil {
					uc.logger.Warn("tasks", "sync", fmt.Sprintf("backend unreachable, using snapshot from %s", syncedAt.Format(time.RFC3339)))
				}
				return &SyncTasksOutput{Tasks: uc.tasks.All(), SyncedAt: syncedAt, FromSnapshot: true}, nil
			} else if !errors.Is(snapErr, domain.ErrNoSnapshot) && uc.logger != nil {
				uc.logger.Warn("tasks", "snapshot", fmt.Sprintf("load snapshot: %v", snapErr))
			}
		}
		if uc.logger != nil {
			uc.logger.Error("tasks", "sync", err.Error())
		}
		return nil, err
	}

	syncedAt := uc.clock.Now()
	if uc.snapshot != nil {
		if snapErr := uc.snapshot.SaveTasks(owner, syncedAt, uc.tasks.All()); snapErr != nil && uc.logger != nil {
			uc.logger.Warn("tasks", "snapshot", fmt.Sprintf("save snapshot: %v", snapErr))
		}
	}
	if uc.logger != nil {
		uc.logger.Info("tasks", "sync", fmt.Sprintf("synced %d tasks for %s", len(uc.tasks.All()), owner))
	}

	return &SyncTasksOutput{Tasks: uc.tasks.All(), SyncedAt: syncedAt}, nil
}
