package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

func TestSyncTasks_Success(t *testing.T) {
	tasks := store.NewTaskStore()
	repo := &mockTaskRepo{
		listFn: func(_ context.Context, owner string) ([]domain.Task, error) {
			assert.Equal(t, "alice@example.com", owner)
			return []domain.Task{{ID: "t1", Owner: owner, Subject: "Math"}}, nil
		},
	}
	snap := &memSnapshotter{}
	uc := NewSyncTasks(tasks, repo, snap, &stubConfigLoader{}, &mockClock{now: testNow}, &recordLogger{})

	out, err := uc.Execute(context.Background(), SyncTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.False(t, out.FromSnapshot)
	assert.True(t, testNow.Equal(out.SyncedAt))
	assert.True(t, tasks.Loaded())
	assert.Equal(t, "alice@example.com", snap.taskOwner, "snapshot is refreshed on success")
}

func TestSyncTasks_OwnerOverride(t *testing.T) {
	var gotOwner string
	repo := &mockTaskRepo{
		listFn: func(_ context.Context, owner string) ([]domain.Task, error) {
			gotOwner = owner
			return nil, nil
		},
	}
	uc := NewSyncTasks(store.NewTaskStore(), repo, &memSnapshotter{}, &stubConfigLoader{}, &mockClock{now: testNow}, nil)

	_, err := uc.Execute(context.Background(), SyncTasksInput{Owner: "bob@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", gotOwner)
}

func TestSyncTasks_NoOwnerConfigured(t *testing.T) {
	cfg := domain.NewDefaultConfig() // no owner.email
	uc := NewSyncTasks(store.NewTaskStore(), &mockTaskRepo{}, &memSnapshotter{}, &stubConfigLoader{cfg: cfg}, &mockClock{now: testNow}, nil)

	_, err := uc.Execute(context.Background(), SyncTasksInput{})

	assert.ErrorIs(t, err, domain.ErrNoOwner)
}

func TestSyncTasks_FetchFailureKeepsStore(t *testing.T) {
	tasks := store.NewTaskStore()
	tasks.Restore("alice@example.com", []domain.Task{{ID: "cached"}})

	repo := &mockTaskRepo{
		listFn: func(_ context.Context, _ string) ([]domain.Task, error) {
			return nil, assert.AnError
		},
	}
	uc := NewSyncTasks(tasks, repo, &memSnapshotter{}, &stubConfigLoader{}, &mockClock{now: testNow}, &recordLogger{})

	_, err := uc.Execute(context.Background(), SyncTasksInput{})

	var ferr *domain.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Len(t, tasks.All(), 1, "prior state survives the failed sync")
}

func TestSyncTasks_SnapshotFallback(t *testing.T) {
	snap := &memSnapshotter{}
	require.NoError(t, snap.SaveTasks("alice@example.com", testNow.Add(-time.Hour), []domain.Task{{ID: "snap-1"}}))

	tasks := store.NewTaskStore()
	repo := &mockTaskRepo{
		listFn: func(_ context.Context, _ string) ([]domain.Task, error) {
			return nil, assert.AnError
		},
	}
	uc := NewSyncTasks(tasks, repo, snap, &stubConfigLoader{}, &mockClock{now: testNow}, &recordLogger{})

	out, err := uc.Execute(context.Background(), SyncTasksInput{AllowSnapshot: true})

	require.NoError(t, err)
	assert.True(t, out.FromSnapshot)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "snap-1", out.Tasks[0].ID)
	assert.True(t, tasks.Loaded())
}

func TestSyncTasks_SnapshotFallbackMissesPropagateFetchError(t *testing.T) {
	repo := &mockTaskRepo{
		listFn: func(_ context.Context, _ string) ([]domain.Task, error) {
			return nil, assert.AnError
		},
	}
	uc := NewSyncTasks(store.NewTaskStore(), repo, &memSnapshotter{}, &stubConfigLoader{}, &mockClock{now: testNow}, nil)

	_, err := uc.Execute(context.Background(), SyncTasksInput{AllowSnapshot: true})

	var ferr *domain.FetchError
	assert.ErrorAs(t, err, &ferr)
}
