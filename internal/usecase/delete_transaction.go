package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// DeleteTransactionInput contains the parameters for deleting a transaction.
type DeleteTransactionInput struct {
	ID    string
	Owner string // Owner override (optional, falls back to config)
}

// DeleteTransactionOutput contains the result of deleting a transaction.
type DeleteTransactionOutput struct {
	AlreadyGone bool
}

// DeleteTransaction removes a transaction remotely and from the ledger. A
// backend 404 is treated as success.
type DeleteTransaction struct {
	ledger *store.LedgerStore
	repo   domain.BudgetRepository
	config domain.ConfigLoader
	logger domain.Logger
}

// NewDeleteTransaction creates a new DeleteTransaction use case.
func NewDeleteTransaction(
	ledger *store.LedgerStore,
	repo domain.BudgetRepository,
	config domain.ConfigLoader,
	logger domain.Logger,
) *DeleteTransaction {
	return &DeleteTransaction{
		ledger: ledger,
		repo:   repo,
		config: config,
		logger: logger,
	}
}

// Execute deletes the transaction.
func (uc *DeleteTransaction) Execute(ctx context.Context, in DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	out := &DeleteTransactionOutput{}
	if err := uc.repo.Delete(ctx, in.ID, owner); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		out.AlreadyGone = true
	}

	uc.ledger.Remove(in.ID)
	if uc.logger != nil {
		uc.logger.Info("budget", "delete", fmt.Sprintf("deleted transaction %s", in.ID))
	}

	return out, nil
}
