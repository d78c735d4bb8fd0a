package usecase

import (
	"context"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
	"github.com/studentlife/campus/internal/views"
)

// TaskStatsInput contains the parameters for computing task statistics.
type TaskStatsInput struct{}

// TaskStatsOutput aggregates every study statistic in one pass so callers
// render a consistent snapshot.
// Fields are ordered to minimize memory padding.
type TaskStatsOutput struct {
	ByPriority        map[domain.Priority]int
	BySubject         []views.SubjectCount
	WeeklyActivity    []views.DayActivity
	Total             int
	Pending           int
	Completed         int
	Overdue           int
	Urgent            int
	CompletionRate    int // 0..100
	TotalStudyMinutes int
}

// TaskStats computes the statistics dashboard from the store's snapshot.
type TaskStats struct {
	tasks *store.TaskStore
	clock domain.Clock
}

// NewTaskStats creates a new TaskStats use case.
func NewTaskStats(tasks *store.TaskStore, clock domain.Clock) *TaskStats {
	return &TaskStats{
		tasks: tasks,
		clock: clock,
	}
}

// Execute computes the statistics.
func (uc *TaskStats) Execute(_ context.Context, _ TaskStatsInput) (*TaskStatsOutput, error) {
	snapshot := uc.tasks.All()
	now := uc.clock.Now()

	overdue := 0
	completed := 0
	for _, t := range snapshot {
		if t.Completed {
			completed++
		} else if views.IsOverdue(t, now) {
			overdue++
		}
	}

	return &TaskStatsOutput{
		ByPriority:        views.PriorityDistribution(snapshot),
		BySubject:         views.GroupBySubject(snapshot),
		WeeklyActivity:    views.WeeklyActivity(snapshot, now),
		Total:             len(snapshot),
		Pending:           len(snapshot) - completed,
		Completed:         completed,
		Overdue:           overdue,
		Urgent:            len(views.UrgentTasks(snapshot, now)),
		CompletionRate:    views.CompletionRate(snapshot),
		TotalStudyMinutes: views.TotalStudyMinutes(snapshot),
	}, nil
}
