package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/views"
)

type taskItem struct {
	task domain.Task
	now  time.Time
}

func (t taskItem) FilterValue() string {
	return t.task.Subject + " " + t.task.Topic
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// stateMarker returns the styled one-character completion/due marker for a task.
func (d taskDelegate) stateMarker(task domain.Task, now time.Time) string {
	switch {
	case task.Completed:
		return d.styles.TaskDone.Render("✓")
	case views.IsOverdue(task, now):
		return d.styles.TaskOverdue.Render("!")
	case task.DueInstant().Sub(now) <= views.UrgentWindow:
		return d.styles.TaskUrgent.Render("●")
	default:
		return d.styles.TaskTitle.Render("○")
	}
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	markerPart := d.stateMarker(task, ti.now)
	due := task.DueInstant().Format("Mon 02 Jan 15:04")
	priority := fmt.Sprintf("%-6s", task.Priority.Display())

	listWidth := m.Width()
	title := task.Subject + " / " + task.Topic
	maxTitleLen := listWidth - 32
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	indicator := d.styles.SelectionIndicator.Render(indicatorChar)
	priorityPart := d.styles.PriorityStyle(task.Priority).Render(priority)

	titleStyle := d.styles.TaskTitle
	if selected {
		titleStyle = d.styles.TaskTitleSelected.Bold(true)
	}
	if task.Completed {
		titleStyle = d.styles.TaskDone
	}

	line := "  " + indicator + " " + markerPart + " " + priorityPart + " " + titleStyle.Render(title)
	lineWidth := runewidth.StringWidth(line)
	if lineWidth < listWidth {
		line += fmt.Sprintf("%*s", listWidth-lineWidth, "")
	}
	_, _ = fmt.Fprintln(w, line)

	descLine := "             due " + due + "  " + fmt.Sprintf("%dm", task.Duration)
	if task.Notes != "" {
		notes := escapeNewlines(task.Notes)
		maxNotesLen := listWidth - runewidth.StringWidth(descLine) - 4
		if maxNotesLen > 10 {
			if runewidth.StringWidth(notes) > maxNotesLen {
				notes = runewidth.Truncate(notes, maxNotesLen-3, "...")
			}
			descLine += "  " + notes
		}
	}
	_, _ = fmt.Fprint(w, d.styles.TaskDesc.Render(descLine))
}
