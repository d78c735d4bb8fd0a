package usecase

import (
	"context"
	"time"

	"github.com/studentlife/campus/internal/domain"
)

// mockClock returns a fixed time.
type mockClock struct {
	now time.Time
}

func (c *mockClock) Now() time.Time {
	return c.now
}

// stubConfigLoader returns a canned config.
type stubConfigLoader struct {
	cfg *domain.Config
	err error
}

func (l *stubConfigLoader) Load() (*domain.Config, error) {
	if l.err != nil {
		return nil, l.err
	}
	if l.cfg != nil {
		return l.cfg, nil
	}
	cfg := domain.NewDefaultConfig()
	cfg.Owner.Email = "alice@example.com"
	return cfg, nil
}

// recordLogger captures log lines for assertions.
type recordLogger struct {
	lines []string
}

func (l *recordLogger) Debug(_, _, msg string) { l.lines = append(l.lines, "DEBUG "+msg) }
func (l *recordLogger) Info(_, _, msg string)  { l.lines = append(l.lines, "INFO "+msg) }
func (l *recordLogger) Warn(_, _, msg string)  { l.lines = append(l.lines, "WARN "+msg) }
func (l *recordLogger) Error(_, _, msg string) { l.lines = append(l.lines, "ERROR "+msg) }

// mockTaskRepo is a configurable domain.TaskRepository double.
type mockTaskRepo struct {
	listFn   func(ctx context.Context, owner string) ([]domain.Task, error)
	createFn func(ctx context.Context, task domain.Task) (domain.Task, error)
	updateFn func(ctx context.Context, id, owner string, patch domain.TaskPatch) (domain.Task, error)
	deleteFn func(ctx context.Context, id, owner string) error
}

func (r *mockTaskRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Task, error) {
	if r.listFn == nil {
		return nil, nil
	}
	return r.listFn(ctx, owner)
}

func (r *mockTaskRepo) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	if r.createFn == nil {
		task.ID = "created"
		return task, nil
	}
	return r.createFn(ctx, task)
}

func (r *mockTaskRepo) Update(ctx context.Context, id, owner string, patch domain.TaskPatch) (domain.Task, error) {
	if r.updateFn == nil {
		return domain.Task{}, nil
	}
	return r.updateFn(ctx, id, owner, patch)
}

func (r *mockTaskRepo) Delete(ctx context.Context, id, owner string) error {
	if r.deleteFn == nil {
		return nil
	}
	return r.deleteFn(ctx, id, owner)
}

// mockBudgetRepo is a configurable domain.BudgetRepository double.
type mockBudgetRepo struct {
	listFn   func(ctx context.Context, owner string) ([]domain.Transaction, error)
	createFn func(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
	deleteFn func(ctx context.Context, id, owner string) error
}

func (r *mockBudgetRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Transaction, error) {
	if r.listFn == nil {
		return nil, nil
	}
	return r.listFn(ctx, owner)
}

func (r *mockBudgetRepo) Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	if r.createFn == nil {
		tx.ID = "created"
		return tx, nil
	}
	return r.createFn(ctx, tx)
}

func (r *mockBudgetRepo) Delete(ctx context.Context, id, owner string) error {
	if r.deleteFn == nil {
		return nil
	}
	return r.deleteFn(ctx, id, owner)
}

// mockScheduleRepo is a configurable domain.ScheduleRepository double.
type mockScheduleRepo struct {
	listFn   func(ctx context.Context, owner string) ([]domain.Class, error)
	createFn func(ctx context.Context, class domain.Class) (domain.Class, error)
	deleteFn func(ctx context.Context, id, owner string) error
}

func (r *mockScheduleRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Class, error) {
	if r.listFn == nil {
		return nil, nil
	}
	return r.listFn(ctx, owner)
}

func (r *mockScheduleRepo) Create(ctx context.Context, class domain.Class) (domain.Class, error) {
	if r.createFn == nil {
		class.ID = "created"
		return class, nil
	}
	return r.createFn(ctx, class)
}

func (r *mockScheduleRepo) Delete(ctx context.Context, id, owner string) error {
	if r.deleteFn == nil {
		return nil
	}
	return r.deleteFn(ctx, id, owner)
}

// memSnapshotter is an in-memory domain.Snapshotter double.
type memSnapshotter struct {
	taskOwner string
	tasks     []domain.Task
	taskTime  time.Time

	txOwner string
	txs     []domain.Transaction
	txTime  time.Time

	classOwner string
	classes    []domain.Class
	classTime  time.Time

	saveErr error
}

func (s *memSnapshotter) SaveTasks(owner string, syncedAt time.Time, tasks []domain.Task) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.taskOwner, s.taskTime, s.tasks = owner, syncedAt, tasks
	return nil
}

func (s *memSnapshotter) LoadTasks(owner string) ([]domain.Task, time.Time, error) {
	if s.taskOwner != owner || s.taskTime.IsZero() {
		return nil, time.Time{}, domain.ErrNoSnapshot
	}
	return s.tasks, s.taskTime, nil
}

func (s *memSnapshotter) SaveTransactions(owner string, syncedAt time.Time, txs []domain.Transaction) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.txOwner, s.txTime, s.txs = owner, syncedAt, txs
	return nil
}

func (s *memSnapshotter) LoadTransactions(owner string) ([]domain.Transaction, time.Time, error) {
	if s.txOwner != owner || s.txTime.IsZero() {
		return nil, time.Time{}, domain.ErrNoSnapshot
	}
	return s.txs, s.txTime, nil
}

func (s *memSnapshotter) SaveClasses(owner string, syncedAt time.Time, classes []domain.Class) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.classOwner, s.classTime, s.classes = owner, syncedAt, classes
	return nil
}

func (s *memSnapshotter) LoadClasses(owner string) ([]domain.Class, time.Time, error) {
	if s.classOwner != owner || s.classTime.IsZero() {
		return nil, time.Time{}, domain.ErrNoSnapshot
	}
	return s.classes, s.classTime, nil
}

// testNow is the fixed evaluation instant used across usecase tests.
var testNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func validTaskForm() domain.TaskForm {
	return domain.TaskForm{
		Subject:  "Math",
		Topic:    "Algebra",
		Priority: "high",
		Deadline: "2025-03-20",
		TimeSlot: "14:00",
		Duration: "45",
	}
}
