package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents one task definition from a bulk-import file.
// Fields mirror TaskForm; they stay as strings so the same validation
// boundary applies to file input and flag input.
type TaskDraft struct {
	Subject  string `yaml:"subject"`
	Topic    string `yaml:"topic"`
	Priority string `yaml:"priority"`
	Deadline string `yaml:"deadline"`
	TimeSlot string `yaml:"time_slot"`
	Duration string `yaml:"duration"`
	Notes    string `yaml:"notes"`
}

// Form converts the draft into a TaskForm for validation.
func (d TaskDraft) Form() TaskForm {
	return TaskForm{
		Subject:  d.Subject,
		Topic:    d.Topic,
		Priority: d.Priority,
		Deadline: d.Deadline,
		TimeSlot: d.TimeSlot,
		Duration: d.Duration,
		Notes:    d.Notes,
	}
}

// ParseTaskDrafts parses a YAML file containing one or more task drafts.
//
// Format:
//
//	- subject: Mathematics
//	  topic: Calculus
//	  deadline: 2025-01-10
//	  time_slot: "10:00"
//	  duration: 60
//	  priority: high
//	- subject: Physics
//	  topic: Optics
//	  deadline: 2025-01-12
//	  time_slot: "14:30"
//	  duration: 45
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	var raw []struct {
		Subject  string    `yaml:"subject"`
		Topic    string    `yaml:"topic"`
		Priority string    `yaml:"priority"`
		Deadline yaml.Node `yaml:"deadline"`
		TimeSlot string    `yaml:"time_slot"`
		Duration yaml.Node `yaml:"duration"`
		Notes    string    `yaml:"notes"`
	}
	if err := yaml.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("parse drafts: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNoDraftsInFile
	}

	drafts := make([]TaskDraft, 0, len(raw))
	for _, r := range raw {
		drafts = append(drafts, TaskDraft{
			Subject:  r.Subject,
			Topic:    r.Topic,
			Priority: r.Priority,
			Deadline: scalarValue(r.Deadline),
			TimeSlot: r.TimeSlot,
			Duration: scalarValue(r.Duration),
			Notes:    r.Notes,
		})
	}
	return drafts, nil
}

// scalarValue returns the raw scalar text of a YAML node. Dates and numbers
// are kept as strings so the form boundary does all coercion.
func scalarValue(n yaml.Node) string {
	return n.Value
}
