package domain

import "strings"

// ClassForm holds raw form input for adding a class to the weekly schedule.
type ClassForm struct {
	Subject    string
	Instructor string
	Day        string
	StartTime  string // HH:MM
	EndTime    string // HH:MM, must be after StartTime
	Location   string
}

// Validate checks the form and returns a normalized class payload. The
// returned class has no ID or Owner.
func (f ClassForm) Validate() (*Class, error) {
	required := []struct {
		field string
		value string
	}{
		{"subject", f.Subject},
		{"instructor", f.Instructor},
		{"day", f.Day},
		{"startTime", f.StartTime},
		{"endTime", f.EndTime},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, NewValidationError(ReasonMissingField, r.field)
		}
	}

	day := Weekday(strings.TrimSpace(f.Day))
	if !day.IsValid() {
		return nil, NewValidationError(ReasonInvalidDay, "day")
	}

	start := strings.TrimSpace(f.StartTime)
	if !ValidTimeSlot(start) {
		return nil, NewValidationError(ReasonInvalidTimeSlot, "startTime")
	}
	end := strings.TrimSpace(f.EndTime)
	if !ValidTimeSlot(end) {
		return nil, NewValidationError(ReasonInvalidTimeSlot, "endTime")
	}

	class := &Class{
		Subject:    strings.TrimSpace(f.Subject),
		Instructor: strings.TrimSpace(f.Instructor),
		Day:        day,
		StartTime:  start,
		EndTime:    end,
		Location:   strings.TrimSpace(f.Location),
	}
	if class.Length() <= 0 {
		return nil, NewValidationError(ReasonEndBeforeStart, "endTime")
	}
	return class, nil
}
