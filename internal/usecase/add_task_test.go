package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

func TestAddTask_Success(t *testing.T) {
	tasks := store.NewTaskStore()
	var sent domain.Task
	repo := &mockTaskRepo{
		createFn: func(_ context.Context, task domain.Task) (domain.Task, error) {
			sent = task
			task.ID = "new-1"
			return task, nil
		},
	}
	uc := NewAddTask(tasks, repo, &stubConfigLoader{}, &recordLogger{})

	out, err := uc.Execute(context.Background(), AddTaskInput{Form: validTaskForm()})

	require.NoError(t, err)
	assert.Equal(t, "new-1", out.Task.ID)
	assert.Equal(t, "alice@example.com", sent.Owner, "owner comes from config")
	assert.Empty(t, sent.ID, "server assigns the ID")
	assert.False(t, sent.Completed, "new tasks start pending")

	got := tasks.All()
	require.Len(t, got, 1)
	assert.Equal(t, "new-1", got[0].ID)
}

func TestAddTask_ValidationFailureSkipsNetwork(t *testing.T) {
	called := false
	repo := &mockTaskRepo{
		createFn: func(_ context.Context, task domain.Task) (domain.Task, error) {
			called = true
			return task, nil
		},
	}
	uc := NewAddTask(store.NewTaskStore(), repo, &stubConfigLoader{}, nil)

	form := validTaskForm()
	form.Duration = "0"
	_, err := uc.Execute(context.Background(), AddTaskInput{Form: form})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ReasonInvalidDuration, verr.Reason)
	assert.False(t, called, "invalid forms never reach the backend")
}

func TestAddTask_ConfiguredNotesLimit(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Owner.Email = "alice@example.com"
	cfg.Tasks.NotesLimit = 10
	uc := NewAddTask(store.NewTaskStore(), &mockTaskRepo{}, &stubConfigLoader{cfg: cfg}, nil)

	form := validTaskForm()
	form.Notes = "this note is longer than ten characters"
	_, err := uc.Execute(context.Background(), AddTaskInput{Form: form})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ReasonNotesTooLong, verr.Reason)
}

func TestAddTask_CreateFailureLeavesStoreUntouched(t *testing.T) {
	tasks := store.NewTaskStore()
	repo := &mockTaskRepo{
		createFn: func(_ context.Context, _ domain.Task) (domain.Task, error) {
			return domain.Task{}, domain.NewFetchError("create task", assert.AnError)
		},
	}
	uc := NewAddTask(tasks, repo, &stubConfigLoader{}, nil)

	_, err := uc.Execute(context.Background(), AddTaskInput{Form: validTaskForm()})

	var ferr *domain.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Empty(t, tasks.All())
}
