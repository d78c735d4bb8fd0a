package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// SyncScheduleInput contains the parameters for syncing classes.
type SyncScheduleInput struct {
	Owner         string
	AllowSnapshot bool
}

// SyncScheduleOutput contains the result of syncing classes.
// Fields are ordered to minimize memory padding.
type SyncScheduleOutput struct {
	SyncedAt     time.Time
	Classes      []domain.Class
	FromSnapshot bool
}

// SyncSchedule replaces the in-memory class list with the backend's state,
// updating the local snapshot on success.
type SyncSchedule struct {
	roster   *store.RosterStore
	repo     domain.ScheduleRepository
	snapshot domain.Snapshotter
	config   domain.ConfigLoader
	clock    domain.Clock
	logger   domain.Logger
}

// NewSyncSchedule creates a new SyncSchedule use case.
func NewSyncSchedule(
	roster *store.RosterStore,
	repo domain.ScheduleRepository,
	snapshot domain.Snapshotter,
	config domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *SyncSchedule {
	return &SyncSchedule{
		roster:   roster,
		repo:     repo,
		snapshot: snapshot,
		config:   config,
		clock:    clock,
		logger:   logger,
	}
}

// Execute fetches the owner's classes, with the same failure semantics as
// SyncTasks.
func (uc *SyncSchedule) Execute(ctx context.Context, in SyncScheduleInput) (*SyncScheduleOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	if err := uc.roster.Load(ctx, uc.repo, owner); err != nil {
		if in.AllowSnapshot && uc.snapshot != nil {
			if classes, syncedAt, snapErr := uc.snapshot.LoadClasses(owner); snapErr == nil {
				uc.roster.Restore(owner, classes)
				if uc.logger != nil {
					uc.logger.Warn("schedule", "sync", fmt.Sprintf("backend unreachable, using snapshot from %s", syncedAt.Format(time.RFC3339)))
				}
				return &SyncScheduleOutput{Classes: uc.roster.All(), SyncedAt: syncedAt, FromSnapshot: true}, nil
			} else if !errors.Is(snapErr, domain.ErrNoSnapshot) && uc.logger != nil {
				uc.logger.Warn("schedule", "snapshot", fmt.Sprintf("load snapshot: %v", snapErr))
			}
		}
		if uc.logger != nil {
			uc.logger.Error("schedule", "sync", err.Error())
		}
		return nil, err
	}

	syncedAt := uc.clock.Now()
	if uc.snapshot != nil {
		if snapErr := uc.snapshot.SaveClasses(owner, syncedAt, uc.roster.All()); snapErr != nil && uc.logger != nil {
			uc.logger.Warn("schedule", "snapshot", fmt.Sprintf("save snapshot: %v", snapErr))
		}
	}

	return &SyncScheduleOutput{Classes: uc.roster.All(), SyncedAt: syncedAt}, nil
}
