package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/studentlife/campus/internal/app"
	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/usecase"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage study tasks",
		Long:  `Create, list, complete, and analyze study tasks.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newTaskAddCommand(c))
	cmd.AddCommand(newTaskListCommand(c))
	cmd.AddCommand(newTaskDoneCommand(c))
	cmd.AddCommand(newTaskEditCommand(c))
	cmd.AddCommand(newTaskRmCommand(c))
	cmd.AddCommand(newTaskImportCommand(c))
	cmd.AddCommand(newTaskStatsCommand(c))

	return cmd
}

// taskFormFlags holds the shared form flags for task add and edit.
type taskFormFlags struct {
	Subject  string
	Topic    string
	Deadline string
	TimeSlot string
	Duration string
	Priority string
	Notes    string
	Owner    string
}

func (f *taskFormFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Subject, "subject", "", "Subject (e.g. Mathematics)")
	cmd.Flags().StringVar(&f.Topic, "topic", "", "Topic within the subject")
	cmd.Flags().StringVar(&f.Deadline, "deadline", "", "Deadline date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.TimeSlot, "time", "", "Time slot on the deadline day (HH:MM)")
	cmd.Flags().StringVar(&f.Duration, "duration", "", "Planned study minutes")
	cmd.Flags().StringVar(&f.Priority, "priority", "", "Priority: low, medium, or high (default: medium)")
	cmd.Flags().StringVar(&f.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&f.Owner, "owner", "", "Owner email (default: configured owner)")
}

func (f *taskFormFlags) form() domain.TaskForm {
	return domain.TaskForm{
		Subject:  f.Subject,
		Topic:    f.Topic,
		Deadline: f.Deadline,
		TimeSlot: f.TimeSlot,
		Duration: f.Duration,
		Priority: f.Priority,
		Notes:    f.Notes,
	}
}

// syncTasks refreshes the task store before a task command runs.
// Read-only commands may serve the local snapshot when offline.
func syncTasks(cmd *cobra.Command, c *app.Container, owner string, allowSnapshot bool) error {
	out, err := c.SyncTasksUseCase().Execute(cmd.Context(), usecase.SyncTasksInput{
		Owner:         owner,
		AllowSnapshot: allowSnapshot,
	})
	if err != nil {
		return err
	}
	if out.FromSnapshot {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Offline: showing snapshot from %s\n",
			out.SyncedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// newTaskAddCommand creates the task add subcommand.
func newTaskAddCommand(c *app.Container) *cobra.Command {
	var flags taskFormFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a study task",
		Long: `Add a study task with a deadline and a planned time slot.

Examples:
  # A high-priority task due Friday afternoon
  campus task add --subject Math --topic "Chapter 4" --deadline 2026-09-04 --time 14:00 --duration 90 --priority high

  # Minimal form; priority defaults to medium
  campus task add --subject History --topic Essay --deadline 2026-09-10 --time 09:00 --duration 60`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := syncTasks(cmd, c, flags.Owner, false); err != nil {
				return err
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Form:  flags.form(),
				Owner: flags.Owner,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %s: %s / %s (due %s)\n",
				out.Task.ID, out.Task.Subject, out.Task.Topic,
				out.Task.DueInstant().Format("2006-01-02 15:04"))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// newTaskListCommand creates the task list subcommand.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		View   string
		Search string
		Owner  string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List study tasks",
		Long: `Display study tasks for the configured owner.

Views:
  all        every task (default)
  pending    incomplete tasks, earliest due first
  completed  completed tasks, latest due first
  urgent     incomplete tasks due within the next 48 hours
  upcoming   incomplete tasks due within the next 7 days

Examples:
  campus task list
  campus task list --view urgent
  campus task list --search calculus`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := syncTasks(cmd, c, opts.Owner, true); err != nil {
				return err
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				View:   usecase.TaskView(opts.View),
				Search: opts.Search,
			})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
				return nil
			}

			now := c.Clock.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "\tID\tSUBJECT\tTOPIC\tDUE\tPRIORITY\tMIN")
			for _, task := range out.Tasks {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
					taskMarker(task, now), task.ID, task.Subject, task.Topic,
					task.DueInstant().Format("2006-01-02 15:04"),
					task.Priority.Display(), task.Duration)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.View, "view", "", "View: all, pending, completed, urgent, upcoming")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Filter by subject or topic (case-insensitive)")
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner email (default: configured owner)")
	return cmd
}

// taskMarker returns a one-character state marker for list output.
func taskMarker(task domain.Task, now time.Time) string {
	switch {
	case task.Completed:
		return "x"
	case task.DueInstant().Before(now):
		return "!"
	default:
		return " "
	}
}

// newTaskDoneCommand creates the task done subcommand.
func newTaskDoneCommand(c *app.Container) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle task completion",
		Long: `Toggle a task between pending and completed.

Running done on a completed task marks it pending again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := syncTasks(cmd, c, owner, false); err != nil {
				return err
			}

			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{
				ID:    args[0],
				Owner: owner,
			})
			if err != nil {
				return err
			}

			state := "pending"
			if out.Task.Completed {
				state = "completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s marked %s\n", out.Task.ID, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner email (default: configured owner)")
	return cmd
}

// newTaskEditCommand creates the task edit subcommand.
func newTaskEditCommand(c *app.Container) *cobra.Command {
	var flags taskFormFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a study task",
		Long: `Edit a study task. Only the provided flags change; everything
else keeps its current value.

Examples:
  campus task edit 64f1a --deadline 2026-09-12
  campus task edit 64f1a --priority high --duration 120`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := syncTasks(cmd, c, flags.Owner, false); err != nil {
				return err
			}

			current, ok := c.TaskStore.Get(args[0])
			if !ok {
				return fmt.Errorf("task %s: %w", args[0], domain.ErrNotFound)
			}

			// Pre-fill from the current task, then apply changed flags
			form := domain.FormFromTask(current)
			if cmd.Flags().Changed("subject") {
				form.Subject = flags.Subject
			}
			if cmd.Flags().Changed("topic") {
				form.Topic = flags.Topic
			}
			if cmd.Flags().Changed("deadline") {
				form.Deadline = flags.Deadline
			}
			if cmd.Flags().Changed("time") {
				form.TimeSlot = flags.TimeSlot
			}
			if cmd.Flags().Changed("duration") {
				form.Duration = flags.Duration
			}
			if cmd.Flags().Changed("priority") {
				form.Priority = flags.Priority
			}
			if cmd.Flags().Changed("notes") {
				form.Notes = flags.Notes
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), usecase.EditTaskInput{
				ID:    args[0],
				Owner: flags.Owner,
				Form:  form,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", out.Task.ID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// newTaskRmCommand creates the task rm subcommand.
func newTaskRmCommand(c *app.Container) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a study task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := syncTasks(cmd, c, owner, false); err != nil {
				return err
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{
				ID:    args[0],
				Owner: owner,
			})
			if err != nil {
				return err
			}

			if out.AlreadyGone {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s was already removed\n", args[0])
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner email (default: configured owner)")
	return cmd
}

// newTaskImportCommand creates the task import subcommand.
func newTaskImportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner  string
		DryRun bool
	}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a YAML file",
		Long: `Create tasks in bulk from a YAML draft file.

Every draft is validated before anything is created; a single invalid
draft aborts the whole import.

File format:
  - subject: Mathematics
    topic: Calculus
    deadline: 2026-09-04
    time_slot: "10:00"
    duration: 60
    priority: high
  - subject: Physics
    topic: Optics
    deadline: 2026-09-06
    time_slot: "14:30"
    duration: 45

Examples:
  campus task import drafts.yaml
  campus task import drafts.yaml --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := syncTasks(cmd, c, opts.Owner, false); err != nil {
				return err
			}

			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
				Path:   args[0],
				Owner:  opts.Owner,
				DryRun: opts.DryRun,
			})

			w := cmd.OutOrStdout()
			for _, task := range out.Created {
				_, _ = fmt.Fprintf(w, "Created task %s: %s / %s\n", task.ID, task.Subject, task.Topic)
			}
			if err != nil {
				// Partial imports keep what was created; report both
				if len(out.Created) > 0 {
					_, _ = fmt.Fprintf(w, "Imported %d of %d task(s) before failing\n", len(out.Created), out.Valid)
				}
				return err
			}

			if opts.DryRun {
				_, _ = fmt.Fprintf(w, "Dry run: %d valid draft(s), nothing created\n", out.Valid)
			} else {
				_, _ = fmt.Fprintf(w, "Imported %d task(s)\n", len(out.Created))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner email (default: configured owner)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Validate drafts without creating")
	return cmd
}

// newTaskStatsCommand creates the task stats subcommand.
func newTaskStatsCommand(c *app.Container) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show study statistics",
		Long:  `Display completion, priority, subject, and weekly activity statistics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := syncTasks(cmd, c, owner, true); err != nil {
				return err
			}

			out, err := c.TaskStatsUseCase().Execute(cmd.Context(), usecase.TaskStatsInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Tasks: %d total, %d pending, %d completed (%d%%)\n",
				out.Total, out.Pending, out.Completed, out.CompletionRate)
			_, _ = fmt.Fprintf(w, "Urgent: %d  Overdue: %d  Study time: %s\n",
				out.Urgent, out.Overdue, formatMinutes(out.TotalStudyMinutes))

			_, _ = fmt.Fprintln(w, "\nBy priority:")
			for _, p := range domain.AllPriorities() {
				_, _ = fmt.Fprintf(w, "  %-6s %d\n", p.Display(), out.ByPriority[p])
			}

			if len(out.BySubject) > 0 {
				_, _ = fmt.Fprintln(w, "\nBy subject:")
				for _, sc := range out.BySubject {
					_, _ = fmt.Fprintf(w, "  %-20s %d/%d done\n", sc.Subject, sc.Completed, sc.Total)
				}
			}

			_, _ = fmt.Fprintln(w, "\nDue this week:")
			for _, day := range out.WeeklyActivity {
				bar := strings.Repeat("#", day.Count)
				_, _ = fmt.Fprintf(w, "  %-4s %s (%d)\n", day.Day, bar, day.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner email (default: configured owner)")
	return cmd
}

// formatMinutes renders a minute count as "2h 15m".
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
