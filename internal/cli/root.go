// Package cli provides the command-line interface for campus.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studentlife/campus/internal/app"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupTask     = "task"
	groupBudget   = "budget"
	groupSchedule = "schedule"
)

// launchDashboardFunc is a function variable for launching the dashboard TUI,
// allowing it to be mocked in tests.
var launchDashboardFunc = launchDashboard

// NewRootCommand creates the root command for campus.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "campus",
		Short: "Student life management CLI",
		Long: `campus is a CLI tool for managing student life from the terminal.
It keeps study tasks, budget transactions, and the weekly class
schedule in sync with a shared backend, and falls back to the last
local snapshot when the backend is unreachable.

Run without arguments to open the interactive dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip for config init: it must work before a config exists
			if cmd.Name() == "init" {
				return nil
			}

			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}
			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchDashboardFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Study Tasks:"},
		&cobra.Group{ID: groupBudget, Title: "Budget:"},
		&cobra.Group{ID: groupSchedule, Title: "Class Schedule:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupSetup

	// Study task commands
	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupTask

	// Budget commands
	budgetCmd := newBudgetCommand(c)
	budgetCmd.GroupID = groupBudget

	// Schedule commands
	scheduleCmd := newScheduleCommand(c)
	scheduleCmd.GroupID = groupSchedule

	root.AddCommand(configCmd, tuiCmd, taskCmd, budgetCmd, scheduleCmd)

	return root
}
