package domain

import (
	"context"
	"time"
)

// TaskRepository is the remote CRUD contract for study tasks. Every call is
// scoped by owner; the backend must never return or mutate another owner's
// tasks.
type TaskRepository interface {
	// ListByOwner retrieves all tasks belonging to owner.
	ListByOwner(ctx context.Context, owner string) ([]Task, error)

	// Create persists a new task and returns it with the assigned ID.
	Create(ctx context.Context, task Task) (Task, error)

	// Update applies a partial update and returns the updated task.
	// Returns ErrNotFound if no task with that id/owner pair exists.
	Update(ctx context.Context, id, owner string, patch TaskPatch) (Task, error)

	// Delete removes a task. Returns ErrNotFound if it no longer exists.
	Delete(ctx context.Context, id, owner string) error
}

// TaskPatch describes a partial task update. Nil fields are left unchanged.
// Fields are ordered to minimize memory padding.
type TaskPatch struct {
	Deadline  *time.Time
	Subject   *string
	Topic     *string
	TimeSlot  *string
	Notes     *string
	Priority  *Priority
	Duration  *int
	Completed *bool
}

// BudgetRepository is the remote CRUD contract for budget transactions.
type BudgetRepository interface {
	ListByOwner(ctx context.Context, owner string) ([]Transaction, error)
	Create(ctx context.Context, tx Transaction) (Transaction, error)
	Delete(ctx context.Context, id, owner string) error
}

// ScheduleRepository is the remote CRUD contract for weekly classes.
type ScheduleRepository interface {
	ListByOwner(ctx context.Context, owner string) ([]Class, error)
	Create(ctx context.Context, class Class) (Class, error)
	Delete(ctx context.Context, id, owner string) error
}

// Snapshotter persists the last successfully synced state locally so reads
// can be served offline.
type Snapshotter interface {
	SaveTasks(owner string, syncedAt time.Time, tasks []Task) error
	LoadTasks(owner string) ([]Task, time.Time, error)
	SaveTransactions(owner string, syncedAt time.Time, txs []Transaction) error
	LoadTransactions(owner string) ([]Transaction, time.Time, error)
	SaveClasses(owner string, syncedAt time.Time, classes []Class) error
	LoadClasses(owner string) ([]Class, time.Time, error)
}

// Logger writes structured log lines scoped to an entity.
type Logger interface {
	Debug(scope, category, msg string)
	Info(scope, category, msg string)
	Warn(scope, category, msg string)
	Error(scope, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)
}

// ConfigManager manages configuration files on disk.
type ConfigManager interface {
	GetLocalConfigInfo() ConfigInfo
	GetGlobalConfigInfo() ConfigInfo
	InitLocalConfig(cfg *Config) error
	InitGlobalConfig(cfg *Config) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
