package views

import (
	"slices"
	"strings"
	"time"

	"github.com/studentlife/campus/internal/domain"
)

// FilterByDay returns the classes held on day. An empty day matches all.
func FilterByDay(classes []domain.Class, day domain.Weekday) []domain.Class {
	if day == "" {
		return append([]domain.Class(nil), classes...)
	}
	var out []domain.Class
	for _, c := range classes {
		if c.Day == day {
			out = append(out, c)
		}
	}
	return out
}

// SearchClasses returns classes whose subject, instructor or location
// contains term, case-insensitively. An empty term matches everything.
func SearchClasses(classes []domain.Class, term string) []domain.Class {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]domain.Class(nil), classes...)
	}
	var out []domain.Class
	for _, c := range classes {
		if strings.Contains(strings.ToLower(c.Subject), term) ||
			strings.Contains(strings.ToLower(c.Instructor), term) ||
			strings.Contains(strings.ToLower(c.Location), term) {
			out = append(out, c)
		}
	}
	return out
}

// WeeklyHours sums the length of all classes across the week.
func WeeklyHours(classes []domain.Class) time.Duration {
	total := time.Duration(0)
	for _, c := range classes {
		total += c.Length()
	}
	return total
}

// UniqueInstructors counts distinct instructor names.
func UniqueInstructors(classes []domain.Class) int {
	seen := make(map[string]struct{})
	for _, c := range classes {
		seen[c.Instructor] = struct{}{}
	}
	return len(seen)
}

// DayClasses is one day's classes in start-time order.
type DayClasses struct {
	Day     domain.Weekday
	Classes []domain.Class
}

// GroupByDay arranges classes into a Monday-first week, each day sorted by
// start time. Days without classes are included with an empty list.
func GroupByDay(classes []domain.Class) []DayClasses {
	out := make([]DayClasses, 0, 7)
	for _, day := range domain.AllWeekdays() {
		dc := DayClasses{Day: day}
		for _, c := range classes {
			if c.Day == day {
				dc.Classes = append(dc.Classes, c)
			}
		}
		slices.SortStableFunc(dc.Classes, func(a, b domain.Class) int {
			return strings.Compare(a.StartTime, b.StartTime)
		})
		out = append(out, dc)
	}
	return out
}
