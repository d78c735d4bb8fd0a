package store

import (
	"context"
	"errors"

	"github.com/studentlife/campus/internal/domain"
)

// RosterStore owns the in-memory list of weekly classes for the current
// session. Same ownership and mutation rules as TaskStore.
type RosterStore struct {
	owner   string
	classes []domain.Class
	loaded  bool
}

// NewRosterStore creates an empty RosterStore.
func NewRosterStore() *RosterStore {
	return &RosterStore{}
}

// Load replaces the list with the repository's result for owner, keeping
// prior state on failure.
func (s *RosterStore) Load(ctx context.Context, repo domain.ScheduleRepository, owner string) error {
	classes, err := repo.ListByOwner(ctx, owner)
	if err != nil {
		var ferr *domain.FetchError
		if errors.As(err, &ferr) {
			return err
		}
		return domain.NewFetchError("list classes", err)
	}
	s.owner = owner
	s.classes = classes
	s.loaded = true
	return nil
}

// Restore seeds the store from a local snapshot.
func (s *RosterStore) Restore(owner string, classes []domain.Class) {
	s.owner = owner
	s.classes = append([]domain.Class(nil), classes...)
	s.loaded = true
}

// Add appends a class already persisted by the repository.
func (s *RosterStore) Add(class domain.Class) {
	s.classes = append(s.classes, class)
}

// Remove deletes the class with matching ID if present.
func (s *RosterStore) Remove(id string) {
	for i := range s.classes {
		if s.classes[i].ID == id {
			s.classes = append(s.classes[:i], s.classes[i+1:]...)
			return
		}
	}
}

// All returns a copy of the current class list in insertion order.
func (s *RosterStore) All() []domain.Class {
	return append([]domain.Class(nil), s.classes...)
}

// Owner returns the owner the store was loaded for.
func (s *RosterStore) Owner() string {
	return s.owner
}
