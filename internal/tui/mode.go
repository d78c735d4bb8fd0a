package tui

// Mode is the dashboard interaction mode.
type Mode int

const (
	// ModeNormal is the default list navigation mode.
	ModeNormal Mode = iota
	// ModeConfirmDelete waits for a yes/no on a pending task deletion.
	ModeConfirmDelete
)

// Tab identifies a dashboard tab.
type Tab int

const (
	// TabTasks shows the study task list and statistics.
	TabTasks Tab = iota
	// TabBudget shows the budget summary.
	TabBudget
	// TabSchedule shows the weekly class schedule.
	TabSchedule

	tabCount
)

// Title returns the display name of the tab.
func (t Tab) Title() string {
	switch t {
	case TabTasks:
		return "Tasks"
	case TabBudget:
		return "Budget"
	case TabSchedule:
		return "Schedule"
	default:
		return "?"
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return (t + tabCount - 1) % tabCount
}
