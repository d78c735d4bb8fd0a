package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studentlife/campus/internal/app"
	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/usecase"
)

// newScheduleCommand creates the schedule command group.
func newScheduleCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage the weekly class schedule",
		Long:  `Add classes and review the week's timetable.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newScheduleAddCommand(c))
	cmd.AddCommand(newScheduleRmCommand(c))
	cmd.AddCommand(newScheduleWeekCommand(c))

	return cmd
}

// syncSchedule refreshes the roster before a schedule command runs.
func syncSchedule(cmd *cobra.Command, c *app.Container, owner string, allowSnapshot bool) error {
	out, err := c.SyncScheduleUseCase().Execute(cmd.Context(), usecase.SyncScheduleInput{
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

// newScheduleAddCommand creates the schedule add subcommand.
func newScheduleAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Subject    string
		Instructor string
		Day        string
		StartTime  string
		EndTime    string
		Location   string
		Owner      string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a class",
		Long: `Add a class to the weekly schedule.

Overlapping classes on the same day are allowed but reported, so a
deliberate double booking stays possible.

Examples:
  campus schedule add --subject Physics --instructor "Dr. Webb" --day Monday --start 09:00 --end 10:30 --location "Lab 2"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := syncSchedule(cmd, c, opts.Owner, false); err != nil {
				return err
			}

			out, err := c.AddClassUseCase().Execute(cmd.Context(), usecase.AddClassInput{
				Form: domain.ClassForm{
					Subject:    opts.Subject,
					Instructor: opts.Instructor,
					Day:        opts.Day,
					StartTime:  opts.StartTime,
					EndTime:    opts.EndTime,
					Location:   opts.Location,
				},
				Owner: opts.Owner,
			})
			if err != nil {
				return err
			}

			for _, cl := range out.Overlaps {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: overlaps with %s (%s %s-%s)\n",
					cl.Subject, cl.Day, cl.StartTime, cl.EndTime)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added class %s: %s on %s %s-%s\n",
				out.Class.ID, out.Class.Subject, out.Class.Day, out.Class.StartTime, out.Class.EndTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Subject, "subject", "", "Subject (e.g. Physics)")
	cmd.Flags().StringVar(&opts.Instructor, "instructor", "", "Instructor name")
	cmd.Flags().StringVar(&opts.Day, "day", "", "Day of week (e.g. Monday)")
	cmd.Flags().StringVar(&opts.StartTime, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&opts.EndTime, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Room or building")
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner email (default: configured owner)")
	return cmd
}

// newScheduleRmCommand creates the schedule rm subcommand.
func newScheduleRmCommand(c *app.Container) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := syncSchedule(cmd, c, owner, false); err != nil {
				return err
			}

			out, err := c.DeleteClassUseCase().Execute(cmd.Context(), usecase.DeleteClassInput{
				ID:    args[0],
				Owner: owner,
			})
			if err != nil {
				return err
			}

			if out.AlreadyGone {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Class %s was already removed\n", args[0])
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted class %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner email (default: configured owner)")
	return cmd
}

// newScheduleWeekCommand creates the schedule week subcommand.
func newScheduleWeekCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Day    string
		Search string
		Owner  string
	}

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly timetable",
		Long: `Display the full week's classes grouped by day.

Examples:
  campus schedule week
  campus schedule week --day Friday
  campus schedule week --search webb`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := syncSchedule(cmd, c, opts.Owner, true); err != nil {
				return err
			}

			out, err := c.WeekScheduleUseCase().Execute(cmd.Context(), usecase.WeekScheduleInput{
				Day:    domain.Weekday(opts.Day),
				Search: opts.Search,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%d class(es), %d instructor(s), %.1f hours/week\n",
				out.Classes, out.Instructors, out.WeeklyHours.Hours())

			for _, day := range out.Days {
				if len(day.Classes) == 0 {
					continue
				}
				_, _ = fmt.Fprintf(w, "\n%s:\n", day.Day)
				for _, cl := range day.Classes {
					_, _ = fmt.Fprintf(w, "  %s-%s  %-20s %-16s %s\n",
						cl.StartTime, cl.EndTime, cl.Subject, cl.Instructor, cl.Location)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Day, "day", "", "Limit to one day (e.g. Monday)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Filter by subject, instructor, or location")
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner email (default: configured owner)")
	return cmd
}
