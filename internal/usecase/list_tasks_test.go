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

func seedTaskStore() *store.TaskStore {
	day := func(s string) time.Time {
		d, _ := time.ParseInLocation("2006-01-02", s, time.UTC)
		return d
	}
	s := store.NewTaskStore()
	s.Restore("alice@example.com", []domain.Task{
		{ID: "urgent", Subject: "Math", Topic: "Algebra", Deadline: day("2025-03-15"), TimeSlot: "18:00", Priority: domain.PriorityHigh, Duration: 30},
		{ID: "later", Subject: "Physics", Topic: "Optics", Deadline: day("2025-04-01"), TimeSlot: "10:00", Priority: domain.PriorityLow, Duration: 60},
		{ID: "done", Subject: "History", Topic: "WW2", Deadline: day("2025-03-10"), TimeSlot: "09:00", Priority: domain.PriorityMedium, Duration: 45, Completed: true},
	})
	return s
}

func TestListTasks_Views(t *testing.T) {
	uc := NewListTasks(seedTaskStore(), &mockClock{now: testNow})

	tests := []struct {
		view TaskView
		ids  []string
	}{
		{ViewAll, []string{"urgent", "later", "done"}},
		{"", []string{"urgent", "later", "done"}},
		{ViewPending, []string{"urgent", "later"}},
		{ViewCompleted, []string{"done"}},
		{ViewUrgent, []string{"urgent"}},
		{ViewUpcoming, []string{"urgent"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			out, err := uc.Execute(context.Background(), ListTasksInput{View: tt.view})
			require.NoError(t, err)
			ids := make([]string, 0, len(out.Tasks))
			for _, task := range out.Tasks {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestListTasks_Search(t *testing.T) {
	uc := NewListTasks(seedTaskStore(), &mockClock{now: testNow})

	out, err := uc.Execute(context.Background(), ListTasksInput{View: ViewAll, Search: "optics"})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "later", out.Tasks[0].ID)
}

func TestListTasks_UnknownView(t *testing.T) {
	uc := NewListTasks(seedTaskStore(), &mockClock{now: testNow})

	_, err := uc.Execute(context.Background(), ListTasksInput{View: "bogus"})

	assert.Error(t, err)
}

func TestTaskStats(t *testing.T) {
	uc := NewTaskStats(seedTaskStore(), &mockClock{now: testNow})

	out, err := uc.Execute(context.Background(), TaskStatsInput{})

	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 2, out.Pending)
	assert.Equal(t, 1, out.Completed)
	assert.Equal(t, 33, out.CompletionRate)
	assert.Equal(t, 45, out.TotalStudyMinutes, "only completed durations count")
	assert.Equal(t, 1, out.Urgent)
	assert.Equal(t, 0, out.Overdue)
	assert.Equal(t, 1, out.ByPriority[domain.PriorityHigh])
	assert.Equal(t, 1, out.ByPriority[domain.PriorityMedium])
	assert.Equal(t, 1, out.ByPriority[domain.PriorityLow])
	require.Len(t, out.BySubject, 3)
	assert.Equal(t, "Math", out.BySubject[0].Subject, "first-seen order")
	assert.Len(t, out.WeeklyActivity, 7)
}

func TestTaskStats_EmptyStore(t *testing.T) {
	uc := NewTaskStats(store.NewTaskStore(), &mockClock{now: testNow})

	out, err := uc.Execute(context.Background(), TaskStatsInput{})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.Equal(t, 0, out.CompletionRate, "empty list is 0, not a division by zero")
}
