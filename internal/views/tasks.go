// Package views computes read-only derived views from store snapshots.
// Every function is pure: no side effects, no mutation of the input, safe
// to call repeatedly on every render. The evaluation instant is always
// passed in by the caller so results are deterministic and testable.
package views

import (
	"slices"
	"strings"
	"time"

	"github.com/studentlife/campus/internal/domain"
)

// UrgentWindow is how far ahead a pending task counts as urgent.
const UrgentWindow = 48 * time.Hour

// UpcomingDays is how many calendar days ahead a pending task counts as
// upcoming.
const UpcomingDays = 7

// IsOverdue reports whether the task's due instant has passed.
func IsOverdue(task domain.Task, now time.Time) bool {
	return task.DueInstant().Before(now)
}

// UrgentTasks returns incomplete tasks due within the next 48 hours,
// soonest first. Overdue tasks are excluded; they are already late, not
// urgent.
func UrgentTasks(tasks []domain.Task, now time.Time) []domain.Task {
	limit := now.Add(UrgentWindow)
	var out []domain.Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		due := t.DueInstant()
		if !due.Before(now) && !due.After(limit) {
			out = append(out, t)
		}
	}
	sortByDueAscending(out)
	return out
}

// UpcomingTasks returns incomplete tasks whose deadline falls within the
// next 7 calendar days (day granularity: "today" is now's date truncated
// to midnight), soonest first.
func UpcomingTasks(tasks []domain.Task, now time.Time) []domain.Task {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	lastDay := today.AddDate(0, 0, UpcomingDays)
	var out []domain.Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		day := t.Deadline
		if !day.Before(today) && !day.After(lastDay) {
			out = append(out, t)
		}
	}
	sortByDueAscending(out)
	return out
}

// PendingTasks returns incomplete tasks, soonest first.
func PendingTasks(tasks []domain.Task) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	sortByDueAscending(out)
	return out
}

// CompletedTasks returns completed tasks, most recently due first. The
// asymmetry with PendingTasks is deliberate: users scan "what's next"
// chronologically but "what did I finish" most-recent-first.
func CompletedTasks(tasks []domain.Task) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Task) int {
		return b.DueInstant().Compare(a.DueInstant())
	})
	return out
}

// SearchTasks returns tasks whose subject or topic contains term,
// case-insensitively. An empty term matches everything.
func SearchTasks(tasks []domain.Task, term string) []domain.Task {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]domain.Task(nil), tasks...)
	}
	var out []domain.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Subject), term) ||
			strings.Contains(strings.ToLower(t.Topic), term) {
			out = append(out, t)
		}
	}
	return out
}

// SubjectCount summarizes the tasks of one subject.
type SubjectCount struct {
	Subject   string
	Completed int
	Pending   int
	Total     int
}

// GroupBySubject counts completed/pending/total per subject. Subjects
// appear in first-seen input order.
func GroupBySubject(tasks []domain.Task) []SubjectCount {
	index := make(map[string]int)
	var out []SubjectCount
	for _, t := range tasks {
		i, ok := index[t.Subject]
		if !ok {
			i = len(out)
			index[t.Subject] = i
			out = append(out, SubjectCount{Subject: t.Subject})
		}
		if t.Completed {
			out[i].Completed++
		} else {
			out[i].Pending++
		}
		out[i].Total++
	}
	return out
}

// PriorityDistribution counts tasks per priority. All three priorities are
// always present, zero-filled if absent.
func PriorityDistribution(tasks []domain.Task) map[domain.Priority]int {
	out := map[domain.Priority]int{
		domain.PriorityLow:    0,
		domain.PriorityMedium: 0,
		domain.PriorityHigh:   0,
	}
	for _, t := range tasks {
		if t.Priority.IsValid() {
			out[t.Priority]++
		}
	}
	return out
}

// CompletionRate returns the percentage of completed tasks, rounded to the
// nearest integer. An empty list is 0, never a division by zero.
func CompletionRate(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(float64(completed)/float64(len(tasks))*100 + 0.5)
}

// TotalStudyMinutes sums the duration of completed tasks.
func TotalStudyMinutes(tasks []domain.Task) int {
	total := 0
	for _, t := range tasks {
		if t.Completed {
			total += t.Duration
		}
	}
	return total
}

// DayActivity is the task count for one calendar day.
type DayActivity struct {
	Date  time.Time
	Day   string // Short weekday label, e.g. "Mon"
	Count int
}

// WeeklyActivity counts tasks by deadline date over the trailing 7 calendar
// days (today included), oldest day first.
func WeeklyActivity(tasks []domain.Task, now time.Time) []DayActivity {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]DayActivity, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		count := 0
		for _, t := range tasks {
			if t.Deadline.Year() == day.Year() && t.Deadline.YearDay() == day.YearDay() {
				count++
			}
		}
		out = append(out, DayActivity{Date: day, Day: day.Format("Mon"), Count: count})
	}
	return out
}

// sortByDueAscending sorts tasks by due instant, soonest first. The sort is
// stable: equal due instants keep their input order.
func sortByDueAscending(tasks []domain.Task) {
	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		return a.DueInstant().Compare(b.DueInstant())
	})
}
