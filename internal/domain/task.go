// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a single study-planning unit of work.
// Fields are ordered to minimize memory padding.
type Task struct {
	Deadline  time.Time `json:"deadline"`        // Calendar date (midnight, no time component)
	ID        string    `json:"id"`              // Server-assigned identifier, immutable
	Owner     string    `json:"owner"`           // Owning user (email), immutable
	Subject   string    `json:"subject"`         // Subject (required)
	Topic     string    `json:"topic"`           // Topic (required)
	TimeSlot  string    `json:"timeSlot"`        // Time of day in HH:MM form (required)
	Notes     string    `json:"notes,omitempty"` // Free text, bounded length
	Priority  Priority  `json:"priority"`        // low / medium / high
	Duration  int       `json:"duration"`        // Study duration in minutes, always > 0
	Completed bool      `json:"completed"`       // Completion flag
}

// DueInstant combines the deadline date and time slot into the absolute
// point in time the task is due. It is derived on every call and never
// stored. A malformed time slot falls back to midnight of the deadline.
func (t *Task) DueInstant() time.Time {
	hour, minute, ok := parseTimeSlot(t.TimeSlot)
	if !ok {
		return t.Deadline
	}
	return time.Date(
		t.Deadline.Year(), t.Deadline.Month(), t.Deadline.Day(),
		hour, minute, 0, 0, t.Deadline.Location(),
	)
}

// parseTimeSlot parses an HH:MM string into its components.
func parseTimeSlot(s string) (hour, minute int, ok bool) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, false
	}
	return parsed.Hour(), parsed.Minute(), true
}

// ValidTimeSlot reports whether s is a well-formed HH:MM time of day.
func ValidTimeSlot(s string) bool {
	_, _, ok := parseTimeSlot(s)
	return ok
}
