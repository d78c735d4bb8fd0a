package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

func TestEditTask_Success(t *testing.T) {
	tasks := store.NewTaskStore()
	tasks.Restore("alice@example.com", []domain.Task{{ID: "t1", Subject: "Math", Topic: "Algebra"}})

	repo := &mockTaskRepo{
		updateFn: func(_ context.Context, id, owner string, patch domain.TaskPatch) (domain.Task, error) {
			assert.Equal(t, "t1", id)
			assert.Equal(t, "alice@example.com", owner)
			require.NotNil(t, patch.Subject)
			assert.Nil(t, patch.Completed, "edit never flips completion")
			return domain.Task{ID: id, Owner: owner, Subject: *patch.Subject, Topic: *patch.Topic}, nil
		},
	}
	uc := NewEditTask(tasks, repo, &stubConfigLoader{}, &recordLogger{})

	form := validTaskForm()
	form.Subject = "Advanced Math"
	out, err := uc.Execute(context.Background(), EditTaskInput{ID: "t1", Form: form})

	require.NoError(t, err)
	assert.Equal(t, "Advanced Math", out.Task.Subject)

	got, ok := tasks.Get("t1")
	require.True(t, ok)
	assert.Equal(t, "Advanced Math", got.Subject)
}

func TestEditTask_RemoteGoneReconcilesLocally(t *testing.T) {
	tasks := store.NewTaskStore()
	tasks.Restore("alice@example.com", []domain.Task{{ID: "t1", Subject: "Math"}})

	repo := &mockTaskRepo{
		updateFn: func(_ context.Context, _, _ string, _ domain.TaskPatch) (domain.Task, error) {
			return domain.Task{}, domain.ErrNotFound
		},
	}
	uc := NewEditTask(tasks, repo, &stubConfigLoader{}, &recordLogger{})

	_, err := uc.Execute(context.Background(), EditTaskInput{ID: "t1", Form: validTaskForm()})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, tasks.All(), "stale copy is removed so the store reconverges")
}

func TestEditTask_ValidationFailure(t *testing.T) {
	uc := NewEditTask(store.NewTaskStore(), &mockTaskRepo{}, &stubConfigLoader{}, nil)

	form := validTaskForm()
	form.TimeSlot = "25:99"
	_, err := uc.Execute(context.Background(), EditTaskInput{ID: "t1", Form: form})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ReasonInvalidTimeSlot, verr.Reason)
}

func TestToggleTask_FlipsCompletion(t *testing.T) {
	tasks := store.NewTaskStore()
	tasks.Restore("alice@example.com", []domain.Task{{ID: "t1", Subject: "Math", Completed: false}})

	repo := &mockTaskRepo{
		updateFn: func(_ context.Context, id, owner string, patch domain.TaskPatch) (domain.Task, error) {
			require.NotNil(t, patch.Completed)
			assert.True(t, *patch.Completed)
			assert.Nil(t, patch.Subject, "toggle patches only the flag")
			return domain.Task{ID: id, Owner: owner, Subject: "Math", Completed: *patch.Completed}, nil
		},
	}
	uc := NewToggleTask(tasks, repo, &stubConfigLoader{}, &recordLogger{})

	out, err := uc.Execute(context.Background(), ToggleTaskInput{ID: "t1"})

	require.NoError(t, err)
	assert.True(t, out.Task.Completed)

	got, _ := tasks.Get("t1")
	assert.True(t, got.Completed)
}

func TestToggleTask_UnknownLocalID(t *testing.T) {
	uc := NewToggleTask(store.NewTaskStore(), &mockTaskRepo{}, &stubConfigLoader{}, nil)

	_, err := uc.Execute(context.Background(), ToggleTaskInput{ID: "missing"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestToggleTask_RemoteGoneReconcilesLocally(t *testing.T) {
	tasks := store.NewTaskStore()
	tasks.Restore("alice@example.com", []domain.Task{{ID: "t1"}})

	repo := &mockTaskRepo{
		updateFn: func(_ context.Context, _, _ string, _ domain.TaskPatch) (domain.Task, error) {
			return domain.Task{}, domain.ErrNotFound
		},
	}
	uc := NewToggleTask(tasks, repo, &stubConfigLoader{}, &recordLogger{})

	_, err := uc.Execute(context.Background(), ToggleTaskInput{ID: "t1"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, tasks.All())
}

func TestDeleteTask_Success(t *testing.T) {
	tasks := store.NewTaskStore()
	tasks.Restore("alice@example.com", []domain.Task{{ID: "t1"}, {ID: "t2"}})

	uc := NewDeleteTask(tasks, &mockTaskRepo{}, &stubConfigLoader{}, &recordLogger{})

	out, err := uc.Execute(context.Background(), DeleteTaskInput{ID: "t1"})

	require.NoError(t, err)
	assert.False(t, out.AlreadyGone)
	assert.Len(t, tasks.All(), 1)
}

func TestDeleteTask_AlreadyGoneIsSuccess(t *testing.T) {
	tasks := store.NewTaskStore()
	tasks.Restore("alice@example.com", []domain.Task{{ID: "t1"}})

	repo := &mockTaskRepo{
		deleteFn: func(_ context.Context, _, _ string) error {
			return domain.ErrNotFound
		},
	}
	uc := NewDeleteTask(tasks, repo, &stubConfigLoader{}, &recordLogger{})

	out, err := uc.Execute(context.Background(), DeleteTaskInput{ID: "t1"})

	require.NoError(t, err, "the desired end state already holds")
	assert.True(t, out.AlreadyGone)
	assert.Empty(t, tasks.All())
}

func TestDeleteTask_FetchFailureKeepsStore(t *testing.T) {
	tasks := store.NewTaskStore()
	tasks.Restore("alice@example.com", []domain.Task{{ID: "t1"}})

	repo := &mockTaskRepo{
		deleteFn: func(_ context.Context, _, _ string) error {
			return domain.NewFetchError("delete task", assert.AnError)
		},
	}
	uc := NewDeleteTask(tasks, repo, &stubConfigLoader{}, nil)

	_, err := uc.Execute(context.Background(), DeleteTaskInput{ID: "t1"})

	var ferr *domain.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Len(t, tasks.All(), 1, "nothing is removed locally when the backend call fails")
}
