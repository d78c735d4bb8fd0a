package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// SyncBudgetInput contains the parameters for syncing transactions.
type SyncBudgetInput struct {
	Owner         string
	AllowSnapshot bool
}

// SyncBudgetOutput contains the result of syncing transactions.
// Fields are ordered to minimize memory padding.
type SyncBudgetOutput struct {
	SyncedAt     time.Time
	Transactions []domain.Transaction
	FromSnapshot bool
}

// SyncBudget replaces the in-memory transaction list with the backend's
// state, updating the local snapshot on success.
type SyncBudget struct {
	ledger   *store.LedgerStore
	repo     domain.BudgetRepository
	snapshot domain.Snapshotter
	config   domain.ConfigLoader
	clock    domain.Clock
	logger   domain.Logger
}

// NewSyncBudget creates a new SyncBudget use case.
func NewSyncBudget(
	ledger *store.LedgerStore,
	repo domain.BudgetRepository,
	snapshot domain.Snapshotter,
	config domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *SyncBudget {
	return &SyncBudget{
		ledger:   ledger,
		repo:     repo,
		snapshot: snapshot,
		config:   config,
		clock:    clock,
		logger:   logger,
	}
}

// Execute fetches the owner's transactions, with the same failure semantics
// as SyncTasks.
func (uc *SyncBudget) Execute(ctx context.Context, in SyncBudgetInput) (*SyncBudgetOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	if err := uc.ledger.Load(ctx, uc.repo, owner); err != nil {
		if in.AllowSnapshot && uc.snapshot != nil {
			if txs, syncedAt, snapErr := uc.snapshot.LoadTransactions(owner); snapErr == nil {
				uc.ledger.Restore(owner, txs)
				if uc.logger != nil {
					uc.logger.Warn("budget", "sync", fmt.Sprintf("backend unreachable, using snapshot from %s", syncedAt.Format(time.RFC3339)))
				}
				return &SyncBudgetOutput{Transactions: uc.ledger.All(), SyncedAt: syncedAt, FromSnapshot: true}, nil
			} else if !errors.Is(snapErr, domain.ErrNoSnapshot) && uc.logger != nil {
				uc.logger.Warn("budget", "snapshot", fmt.Sprintf("load snapshot: %v", snapErr))
			}
		}
		if uc.logger != nil {
			uc.logger.Error("budget", "sync", err.Error())
		}
		return nil, err
	}

	syncedAt := uc.clock.Now()
	if uc.snapshot != nil {
		if snapErr := uc.snapshot.SaveTransactions(owner, syncedAt, uc.ledger.All()); snapErr != nil && uc.logger != nil {
			uc.logger.Warn("budget", "snapshot", fmt.Sprintf("save snapshot: %v", snapErr))
		}
	}

	return &SyncBudgetOutput{Transactions: uc.ledger.All(), SyncedAt: syncedAt}, nil
}
