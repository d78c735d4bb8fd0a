package usecase

import (
	"context"
	"time"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
	"github.com/studentlife/campus/internal/views"
)

// WeekScheduleInput contains the parameters for rendering the week.
type WeekScheduleInput struct {
	Day    domain.Weekday // Optional single-day filter
	Search string         // Optional subject/instructor/location filter
}

// WeekScheduleOutput contains the weekly schedule and its summary numbers.
// Fields are ordered to minimize memory padding.
type WeekScheduleOutput struct {
	Days        []views.DayClasses // Monday-first; empty days included
	WeeklyHours time.Duration
	Classes     int
	Instructors int
}

// WeekSchedule computes the weekly timetable from the roster snapshot.
type WeekSchedule struct {
	roster *store.RosterStore
}

// NewWeekSchedule creates a new WeekSchedule use case.
func NewWeekSchedule(roster *store.RosterStore) *WeekSchedule {
	return &WeekSchedule{roster: roster}
}

// Execute computes the timetable.
func (uc *WeekSchedule) Execute(_ context.Context, in WeekScheduleInput) (*WeekScheduleOutput, error) {
	snapshot := uc.roster.All()
	if in.Search != "" {
		snapshot = views.SearchClasses(snapshot, in.Search)
	}
	if in.Day != "" {
		snapshot = views.FilterByDay(snapshot, in.Day)
	}

	return &WeekScheduleOutput{
		Days:        views.GroupByDay(snapshot),
		WeeklyHours: views.WeeklyHours(snapshot),
		Classes:     len(snapshot),
		Instructors: views.UniqueInstructors(snapshot),
	}, nil
}
