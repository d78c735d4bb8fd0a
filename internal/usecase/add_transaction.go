package usecase

import (
	"context"
	"fmt"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
	"github.com/studentlife/campus/internal/views"
)

// AddTransactionInput contains the parameters for recording a transaction.
type AddTransactionInput struct {
	Form  domain.TransactionForm
	Owner string // Owner override (optional, falls back to config)
}

// AddTransactionOutput contains the result of recording a transaction.
type AddTransactionOutput struct {
	Transaction domain.Transaction
	NetBalance  float64 // Balance after the transaction
}

// AddTransaction validates a transaction form and persists it. Expenses
// that would drive the net balance negative are rejected before any
// network call; the ledger must be synced first for the check to be
// meaningful.
type AddTransaction struct {
	ledger *store.LedgerStore
	repo   domain.BudgetRepository
	config domain.ConfigLoader
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTransaction creates a new AddTransaction use case.
func NewAddTransaction(
	ledger *store.LedgerStore,
	repo domain.BudgetRepository,
	config domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *AddTransaction {
	return &AddTransaction{
		ledger: ledger,
		repo:   repo,
		config: config,
		clock:  clock,
		logger: logger,
	}
}

// Execute records the transaction.
func (uc *AddTransaction) Execute(ctx context.Context, in AddTransactionInput) (*AddTransactionOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	tx, err := in.Form.Validate(uc.clock.Now())
	if err != nil {
		return nil, err
	}
	tx.Owner = owner

	if tx.Type == domain.TransactionExpense {
		balance := views.NetBalance(uc.ledger.All())
		if tx.Amount > balance {
			return nil, fmt.Errorf("expense of %.2f with balance %.2f: %w", tx.Amount, balance, domain.ErrInsufficientBalance)
		}
	}

	created, err := uc.repo.Create(ctx, *tx)
	if err != nil {
		return nil, err
	}

	uc.ledger.Add(created)
	if uc.logger != nil {
		uc.logger.Info("budget", "create", fmt.Sprintf("recorded %s of %.2f (%s)", created.Type, created.Amount, created.Category))
	}

	return &AddTransactionOutput{
		Transaction: created,
		NetBalance:  views.NetBalance(uc.ledger.All()),
	}, nil
}
