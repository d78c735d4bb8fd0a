package domain

import (
	"strconv"
	"strings"
	"time"
)

// TaskForm holds raw form input for creating or editing a task. All fields
// arrive as strings; Validate is the single place they are coerced into
// typed values. No component downstream re-parses raw input.
type TaskForm struct {
	Subject  string
	Topic    string
	Priority string
	Deadline string // YYYY-MM-DD
	TimeSlot string // HH:MM
	Duration string // positive integer, minutes
	Notes    string
}

// Validate checks the form and returns a normalized task payload. The
// returned task has no ID or Owner; the caller fills those in. notesLimit
// bounds the notes field (DefaultNotesLimit when <= 0).
//
// Validation happens before any network call and failures are always
// recoverable by correcting the input.
func (f TaskForm) Validate(notesLimit int) (*Task, error) {
	if notesLimit <= 0 {
		notesLimit = DefaultNotesLimit
	}

	required := []struct {
		field string
		value string
	}{
		{"subject", f.Subject},
		{"topic", f.Topic},
		{"deadline", f.Deadline},
		{"timeSlot", f.TimeSlot},
		{"duration", f.Duration},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, NewValidationError(ReasonMissingField, r.field)
		}
	}

	duration, err := strconv.Atoi(strings.TrimSpace(f.Duration))
	if err != nil || duration <= 0 {
		return nil, NewValidationError(ReasonInvalidDuration, "duration")
	}

	deadline, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(f.Deadline), time.Local)
	if err != nil {
		return nil, NewValidationError(ReasonInvalidDeadline, "deadline")
	}

	timeSlot := strings.TrimSpace(f.TimeSlot)
	if !ValidTimeSlot(timeSlot) {
		return nil, NewValidationError(ReasonInvalidTimeSlot, "timeSlot")
	}

	priority := Priority(strings.TrimSpace(f.Priority))
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, NewValidationError(ReasonInvalidPriority, "priority")
	}

	if len(f.Notes) > notesLimit {
		return nil, NewValidationError(ReasonNotesTooLong, "notes")
	}

	return &Task{
		Subject:   strings.TrimSpace(f.Subject),
		Topic:     strings.TrimSpace(f.Topic),
		Priority:  priority,
		Deadline:  deadline,
		TimeSlot:  timeSlot,
		Duration:  duration,
		Notes:     f.Notes,
		Completed: false,
	}, nil
}

// FormFromTask converts an existing task back into form input, for edit
// flows that pre-fill the form with current values.
func FormFromTask(t Task) TaskForm {
	return TaskForm{
		Subject:  t.Subject,
		Topic:    t.Topic,
		Priority: string(t.Priority),
		Deadline: t.Deadline.Format("2006-01-02"),
		TimeSlot: t.TimeSlot,
		Duration: strconv.Itoa(t.Duration),
		Notes:    t.Notes,
	}
}
