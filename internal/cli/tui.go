package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/studentlife/campus/internal/app"
	"github.com/studentlife/campus/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive dashboard.
// This is the same as running `campus` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive dashboard",
		Long:  `Launch the interactive terminal dashboard for tasks, budget, and schedule.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchDashboardFunc(c)
		},
	}
	return cmd
}

// launchDashboard starts the bubbletea dashboard program.
func launchDashboard(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
