package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the dashboard.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " syncing...\n")
	} else {
		switch m.tab {
		case TabTasks:
			b.WriteString(m.tasksView())
		case TabBudget:
			b.WriteString(m.budgetView())
		case TabSchedule:
			b.WriteString(m.scheduleView())
		}
	}

	b.WriteString(m.statusView())
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return m.styles.App.Render(b.String())
}

// headerView renders the tab bar.
func (m *Model) headerView() string {
	tabs := make([]string, 0, int(tabCount))
	for t := TabTasks; t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(t.Title()))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(t.Title()))
		}
	}
	header := m.styles.Header.Render("campus") + " " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.offline {
		header += "  " + m.styles.Offline.Render("offline: "+m.syncedAt.Format("Jan 2 15:04"))
	}
	return header
}

// tasksView renders the task list with the statistics summary line.
func (m *Model) tasksView() string {
	var b strings.Builder

	b.WriteString(m.styles.PanelLabel.Render("view: "+string(m.taskView)) + "\n")
	if m.stats != nil {
		b.WriteString(fmt.Sprintf("%d pending, %d completed (%d%%), %d urgent, %d overdue\n",
			m.stats.Pending, m.stats.Completed, m.stats.CompletionRate, m.stats.Urgent, m.stats.Overdue))
	}
	b.WriteString("\n")

	if len(m.taskList.Items()) == 0 {
		b.WriteString(m.styles.PanelLabel.Render("No tasks in this view.") + "\n")
	} else {
		b.WriteString(m.taskList.View() + "\n")
	}
	return b.String()
}

// budgetView renders the budget summary panel.
func (m *Model) budgetView() string {
	if m.budget == nil {
		return m.styles.PanelLabel.Render("No budget data yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("Balance") + "\n")
	b.WriteString(fmt.Sprintf("  %s  in  %s  out  %s  savings %.1f%%\n\n",
		m.styles.Amount.Render(fmt.Sprintf("%.2f", m.budget.NetBalance)),
		m.styles.AmountIn.Render(fmt.Sprintf("%.2f", m.budget.TotalIncome)),
		m.styles.AmountOut.Render(fmt.Sprintf("%.2f", m.budget.TotalExpenses)),
		m.budget.SavingsRate))

	if len(m.budget.ByExpenseCategory) > 0 {
		b.WriteString(m.styles.PanelTitle.Render("Expenses by category") + "\n")
		for _, ct := range m.budget.ByExpenseCategory {
			b.WriteString(fmt.Sprintf("  %-20s %s\n", ct.Category,
				m.styles.AmountOut.Render(fmt.Sprintf("%.2f", ct.Total))))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.PanelTitle.Render("Monthly flow") + "\n")
	for _, mf := range m.budget.MonthlyFlow {
		b.WriteString(fmt.Sprintf("  %-9s %s / %s\n", mf.Label,
			m.styles.AmountIn.Render(fmt.Sprintf("%8.2f", mf.Income)),
			m.styles.AmountOut.Render(fmt.Sprintf("%8.2f", mf.Expenses))))
	}
	return b.String()
}

// scheduleView renders the weekly timetable panel.
func (m *Model) scheduleView() string {
	if m.week == nil {
		return m.styles.PanelLabel.Render("No schedule data yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d class(es), %d instructor(s), %.1f hours/week\n\n",
		m.week.Classes, m.week.Instructors, m.week.WeeklyHours.Hours()))

	for _, day := range m.week.Days {
		if len(day.Classes) == 0 {
			continue
		}
		b.WriteString(m.styles.PanelTitle.Render(string(day.Day)) + "\n")
		for _, cl := range day.Classes {
			b.WriteString(fmt.Sprintf("  %s-%s  %-20s %-16s %s\n",
				cl.StartTime, cl.EndTime, cl.Subject, cl.Instructor, cl.Location))
		}
	}
	return b.String()
}

// statusView renders the error or confirmation line.
func (m *Model) statusView() string {
	switch {
	case m.mode == ModeConfirmDelete:
		task := m.confirmTaskLabel()
		return "\n" + m.styles.Error.Render("Delete "+task+"? (y/esc)") + "\n"
	case m.err != nil:
		return "\n" + m.styles.Error.Render("Error: "+m.err.Error()) + "\n"
	default:
		return "\n"
	}
}

// confirmTaskLabel names the task pending deletion.
func (m *Model) confirmTaskLabel() string {
	if task, ok := m.SelectedTask(); ok && task.ID == m.confirmID {
		return task.Subject + " / " + task.Topic
	}
	return "task " + m.confirmID
}
