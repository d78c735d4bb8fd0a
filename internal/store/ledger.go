package store

import (
	"context"
	"errors"

	"github.com/studentlife/campus/internal/domain"
)

// LedgerStore owns the in-memory list of budget transactions for the
// current session. Same ownership and mutation rules as TaskStore.
type LedgerStore struct {
	owner  string
	txs    []domain.Transaction
	loaded bool
}

// NewLedgerStore creates an empty LedgerStore.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{}
}

// Load replaces the list with the repository's result for owner, keeping
// prior state on failure.
func (s *LedgerStore) Load(ctx context.Context, repo domain.BudgetRepository, owner string) error {
	txs, err := repo.ListByOwner(ctx, owner)
	if err != nil {
		var ferr *domain.FetchError
		if errors.As(err, &ferr) {
			return err
		}
		return domain.NewFetchError("list transactions", err)
	}
	s.owner = owner
	s.txs = txs
	s.loaded = true
	return nil
}

// Restore seeds the store from a local snapshot.
func (s *LedgerStore) Restore(owner string, txs []domain.Transaction) {
	s.owner = owner
	s.txs = append([]domain.Transaction(nil), txs...)
	s.loaded = true
}

// Add appends a transaction already persisted by the repository.
func (s *LedgerStore) Add(tx domain.Transaction) {
	s.txs = append(s.txs, tx)
}

// Remove deletes the transaction with matching ID if present.
func (s *LedgerStore) Remove(id string) {
	for i := range s.txs {
		if s.txs[i].ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			return
		}
	}
}

// All returns a copy of the current transaction list in insertion order.
func (s *LedgerStore) All() []domain.Transaction {
	return append([]domain.Transaction(nil), s.txs...)
}

// Owner returns the owner the store was loaded for.
func (s *LedgerStore) Owner() string {
	return s.owner
}
