package usecase

import (
	"context"
	"fmt"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
	"github.com/studentlife/campus/internal/views"
)

// TaskView selects which derived list of tasks to show.
type TaskView string

// Available task views.
const (
	ViewAll       TaskView = "all"
	ViewPending   TaskView = "pending"
	ViewCompleted TaskView = "completed"
	ViewUrgent    TaskView = "urgent"
	ViewUpcoming  TaskView = "upcoming"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	View   TaskView // Which derived view to compute (default: all)
	Search string   // Optional case-insensitive subject/topic filter
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.Task
}

// ListTasks computes a derived view over the store's current snapshot. It
// never touches the network; sync first.
type ListTasks struct {
	tasks *store.TaskStore
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks *store.TaskStore, clock domain.Clock) *ListTasks {
	return &ListTasks{
		tasks: tasks,
		clock: clock,
	}
}

// Execute computes the requested view.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	snapshot := uc.tasks.All()
	if in.Search != "" {
		snapshot = views.SearchTasks(snapshot, in.Search)
	}

	var result []domain.Task
	switch in.View {
	case ViewAll, "":
		result = snapshot
	case ViewPending:
		result = views.PendingTasks(snapshot)
	case ViewCompleted:
		result = views.CompletedTasks(snapshot)
	case ViewUrgent:
		result = views.UrgentTasks(snapshot, uc.clock.Now())
	case ViewUpcoming:
		result = views.UpcomingTasks(snapshot, uc.clock.Now())
	default:
		return nil, fmt.Errorf("unknown view %q", in.View)
	}

	return &ListTasksOutput{Tasks: result}, nil
}
