// Package store holds the session-scoped in-memory state for the current
// user. Each store is the single source of truth for its entity list and is
// owned by one goroutine (the command or TUI event loop); all mutation goes
// through the narrow Load/Add/Replace/Remove API. Ordering of derived views
// is not a storage concern; lists keep insertion order.
package store

import (
	"context"
	"errors"

	"github.com/studentlife/campus/internal/domain"
)

// TaskStore owns the canonical in-memory list of tasks for the current
// session. It is discarded and refetched on user change; there is no
// cross-user caching.
type TaskStore struct {
	owner  string
	tasks  []domain.Task
	loaded bool
}

// NewTaskStore creates an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// Load replaces the entire list with the repository's result for owner.
// On failure the store keeps its previous state and the error is returned
// as a FetchError so the caller can surface a retry affordance; there is
// no automatic retry.
func (s *TaskStore) Load(ctx context.Context, repo domain.TaskRepository, owner string) error {
	tasks, err := repo.ListByOwner(ctx, owner)
	if err != nil {
		var ferr *domain.FetchError
		if errors.As(err, &ferr) {
			return err
		}
		return domain.NewFetchError("list tasks", err)
	}
	s.owner = owner
	s.tasks = tasks
	s.loaded = true
	return nil
}

// Restore seeds the store from a local snapshot without touching the
// network.
func (s *TaskStore) Restore(owner string, tasks []domain.Task) {
	s.owner = owner
	s.tasks = append([]domain.Task(nil), tasks...)
	s.loaded = true
}

// Add appends a task that has already been persisted by the repository.
func (s *TaskStore) Add(task domain.Task) {
	s.tasks = append(s.tasks, task)
}

// Replace overwrites the task with matching ID in place. A missing ID is a
// benign race (deleted concurrently elsewhere) and the call is a no-op.
func (s *TaskStore) Replace(id string, updated domain.Task) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = updated
			return
		}
	}
}

// Remove deletes the task with matching ID if present; no-op otherwise.
func (s *TaskStore) Remove(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Get returns the task with matching ID.
func (s *TaskStore) Get(id string) (domain.Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return domain.Task{}, false
}

// All returns a copy of the current task list in insertion order.
func (s *TaskStore) All() []domain.Task {
	return append([]domain.Task(nil), s.tasks...)
}

// Owner returns the owner the store was loaded for.
func (s *TaskStore) Owner() string {
	return s.owner
}

// Loaded reports whether the store holds a fetched (or restored) list.
func (s *TaskStore) Loaded() bool {
	return s.loaded
}
