package domain

import "time"

// Weekday is a day-of-week label for class scheduling.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// AllWeekdays returns the week in Monday-first order.
func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// IsValid returns true if the weekday is a known valid value.
func (d Weekday) IsValid() bool {
	for _, w := range AllWeekdays() {
		if d == w {
			return true
		}
	}
	return false
}

// Class represents a recurring class session in the weekly schedule.
// Fields are ordered to minimize memory padding.
type Class struct {
	ID         string  `json:"id"`                 // Server-assigned identifier, immutable
	Owner      string  `json:"owner"`              // Owning user (email), immutable
	Subject    string  `json:"subject"`            // Subject (required)
	Instructor string  `json:"instructor"`         // Instructor name (required)
	StartTime  string  `json:"startTime"`          // HH:MM, required
	EndTime    string  `json:"endTime"`            // HH:MM, must be after StartTime
	Location   string  `json:"location,omitempty"` // Room or building
	Day        Weekday `json:"day"`                // Day of week
}

// Length returns the duration of the class session. A malformed time pair
// yields zero.
func (c *Class) Length() time.Duration {
	start, err := time.Parse("15:04", c.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", c.EndTime)
	if err != nil {
		return 0
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}
