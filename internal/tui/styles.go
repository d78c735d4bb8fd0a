package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/studentlife/campus/internal/domain"
)

// Colors defines the color palette for the dashboard.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Priority colors
	PriorityLow    lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityHigh   lipgloss.Color

	// Task state colors
	Overdue   lipgloss.Color
	Urgent    lipgloss.Color
	Completed lipgloss.Color

	// Money colors
	Income  lipgloss.Color
	Expense lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	PriorityLow:    lipgloss.Color("#74B9FF"), // Light blue
	PriorityMedium: lipgloss.Color("#FDCB6E"), // Yellow
	PriorityHigh:   lipgloss.Color("#D63031"), // Red

	Overdue:   lipgloss.Color("#D63031"), // Red
	Urgent:    lipgloss.Color("#FDCB6E"), // Yellow
	Completed: lipgloss.Color("#00B894"), // Green

	Income:  lipgloss.Color("#00B894"), // Green
	Expense: lipgloss.Color("#D63031"), // Red
}

// Styles contains all the lipgloss styles for the dashboard.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Offline     lipgloss.Style

	// Task list
	TaskTitle          lipgloss.Style
	TaskTitleSelected  lipgloss.Style
	TaskDesc           lipgloss.Style
	TaskDone           lipgloss.Style
	TaskOverdue        lipgloss.Style
	TaskUrgent         lipgloss.Style
	SelectionIndicator lipgloss.Style

	// Panels
	PanelTitle lipgloss.Style
	PanelLabel lipgloss.Style
	Amount     lipgloss.Style
	AmountIn   lipgloss.Style
	AmountOut  lipgloss.Style

	// Status line
	Error  lipgloss.Style
	Status lipgloss.Style

	// Help
	Help lipgloss.Style
}

// DefaultStyles returns the default dashboard styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(0, 1),

		Header:      lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary).Padding(0, 0, 1, 0),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(Colors.TitleSelected).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(Colors.Muted).Padding(0, 1),
		Offline:     lipgloss.NewStyle().Foreground(Colors.Warning),

		TaskTitle:          lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		TaskTitleSelected:  lipgloss.NewStyle().Foreground(Colors.TitleSelected),
		TaskDesc:           lipgloss.NewStyle().Foreground(Colors.DescNormal),
		TaskDone:           lipgloss.NewStyle().Foreground(Colors.Completed).Strikethrough(true),
		TaskOverdue:        lipgloss.NewStyle().Foreground(Colors.Overdue),
		TaskUrgent:         lipgloss.NewStyle().Foreground(Colors.Urgent),
		SelectionIndicator: lipgloss.NewStyle().Foreground(Colors.Primary),

		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(Colors.Secondary),
		PanelLabel: lipgloss.NewStyle().Foreground(Colors.Muted),
		Amount:     lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		AmountIn:   lipgloss.NewStyle().Foreground(Colors.Income),
		AmountOut:  lipgloss.NewStyle().Foreground(Colors.Expense),

		Error:  lipgloss.NewStyle().Foreground(Colors.Error),
		Status: lipgloss.NewStyle().Foreground(Colors.Muted),

		Help: lipgloss.NewStyle().Padding(1, 0, 0, 0),
	}
}

// PriorityStyle returns the style for a task priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return lipgloss.NewStyle().Foreground(Colors.PriorityHigh)
	case domain.PriorityLow:
		return lipgloss.NewStyle().Foreground(Colors.PriorityLow)
	default:
		return lipgloss.NewStyle().Foreground(Colors.PriorityMedium)
	}
}
