package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/studentlife/campus/internal/app"
	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/infra/config"
)

var testNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

type fakeConfigLoader struct{}

func (fakeConfigLoader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	cfg.Owner.Email = "alice@example.com"
	return cfg, nil
}

type fakeLogger struct{}

func (fakeLogger) Debug(_, _, _ string) {}
func (fakeLogger) Info(_, _, _ string)  {}
func (fakeLogger) Warn(_, _, _ string)  {}
func (fakeLogger) Error(_, _, _ string) {}

type fakeSnapshotter struct{}

func (fakeSnapshotter) SaveTasks(string, time.Time, []domain.Task) error { return nil }
func (fakeSnapshotter) LoadTasks(string) ([]domain.Task, time.Time, error) {
	return nil, time.Time{}, domain.ErrNoSnapshot
}
func (fakeSnapshotter) SaveTransactions(string, time.Time, []domain.Transaction) error { return nil }
func (fakeSnapshotter) LoadTransactions(string) ([]domain.Transaction, time.Time, error) {
	return nil, time.Time{}, domain.ErrNoSnapshot
}
func (fakeSnapshotter) SaveClasses(string, time.Time, []domain.Class) error { return nil }
func (fakeSnapshotter) LoadClasses(string) ([]domain.Class, time.Time, error) {
	return nil, time.Time{}, domain.ErrNoSnapshot
}

type fakeTaskRepo struct {
	tasks  []domain.Task
	nextID int
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, _ string) ([]domain.Task, error) {
	return r.tasks, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, task domain.Task) (domain.Task, error) {
	r.nextID++
	task.ID = string(rune('a' + r.nextID - 1))
	r.tasks = append(r.tasks, task)
	return task, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, id, _ string, patch domain.TaskPatch) (domain.Task, error) {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			if patch.Completed != nil {
				r.tasks[i].Completed = *patch.Completed
			}
			if patch.Subject != nil {
				r.tasks[i].Subject = *patch.Subject
			}
			if patch.Deadline != nil {
				r.tasks[i].Deadline = *patch.Deadline
			}
			if patch.Priority != nil {
				r.tasks[i].Priority = *patch.Priority
			}
			return r.tasks[i], nil
		}
	}
	return domain.Task{}, domain.ErrNotFound
}

func (r *fakeTaskRepo) Delete(_ context.Context, id, _ string) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeBudgetRepo struct {
	txs []domain.Transaction
}

func (r *fakeBudgetRepo) ListByOwner(_ context.Context, _ string) ([]domain.Transaction, error) {
	return r.txs, nil
}

func (r *fakeBudgetRepo) Create(_ context.Context, tx domain.Transaction) (domain.Transaction, error) {
	tx.ID = "tx1"
	r.txs = append(r.txs, tx)
	return tx, nil
}

func (r *fakeBudgetRepo) Delete(_ context.Context, id, _ string) error {
	for i := range r.txs {
		if r.txs[i].ID == id {
			r.txs = append(r.txs[:i], r.txs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeScheduleRepo struct {
	classes []domain.Class
}

func (r *fakeScheduleRepo) ListByOwner(_ context.Context, _ string) ([]domain.Class, error) {
	return r.classes, nil
}

func (r *fakeScheduleRepo) Create(_ context.Context, class domain.Class) (domain.Class, error) {
	class.ID = "c1"
	r.classes = append(r.classes, class)
	return class, nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id, _ string) error {
	for i := range r.classes {
		if r.classes[i].ID == id {
			r.classes = append(r.classes[:i], r.classes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// testDeps bundles the fakes behind a container for command tests.
type testDeps struct {
	container *app.Container
	tasks     *fakeTaskRepo
	budget    *fakeBudgetRepo
	schedule  *fakeScheduleRepo
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	tasks := &fakeTaskRepo{}
	budget := &fakeBudgetRepo{}
	schedule := &fakeScheduleRepo{}
	c := app.NewWithDeps(
		app.Config{WorkDir: t.TempDir()},
		tasks,
		budget,
		schedule,
		fakeSnapshotter{},
		fakeClock{now: testNow},
		fakeConfigLoader{},
		fakeLogger{},
	)
	c.ConfigManager = config.NewManagerWithGlobalDir(c.Config.WorkDir, t.TempDir())
	return &testDeps{container: c, tasks: tasks, budget: budget, schedule: schedule}
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, d *testDeps, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(d.container, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// mustRun executes the root command and fails the test on error.
func mustRun(t *testing.T, d *testDeps, args ...string) string {
	t.Helper()
	out, err := runCommand(t, d, args...)
	require.NoError(t, err, out)
	return out
}
