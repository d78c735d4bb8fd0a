// Package tui implements the interactive dashboard.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studentlife/campus/internal/app"
	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/usecase"
)

// Model is the main bubbletea model for the dashboard.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// Cached panel data
	stats  *usecase.TaskStatsOutput
	budget *usecase.BudgetSummaryOutput
	week   *usecase.WeekScheduleOutput

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model
	spinner  spinner.Model

	// State
	taskView  usecase.TaskView
	confirmID string
	syncedAt  time.Time
	mode      Mode
	tab       Tab
	width     int
	height    int
	offline   bool
	loading   bool
}

// New creates a new dashboard Model with the given container.
func New(c *app.Container) *Model {
	styles := DefaultStyles()

	delegate := newTaskDelegate(styles)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		taskList:  taskList,
		spinner:   sp,
		taskView:  usecase.ViewPending,
		mode:      ModeNormal,
		tab:       TabTasks,
		loading:   true,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.syncTasks(),
		m.syncBudget(),
		m.syncSchedule(),
		m.spinner.Tick,
	)
}

// syncTasks returns a command that refreshes the task store from the backend,
// falling back to the local snapshot when offline.
func (m *Model) syncTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SyncTasksUseCase().Execute(context.Background(), usecase.SyncTasksInput{
			AllowSnapshot: true,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksSynced{Tasks: out.Tasks, SyncedAt: out.SyncedAt, FromSnapshot: out.FromSnapshot}
	}
}

// syncBudget returns a command that refreshes the ledger and recomputes
// the budget summary.
func (m *Model) syncBudget() tea.Cmd {
	return func() tea.Msg {
		sync, err := m.container.SyncBudgetUseCase().Execute(context.Background(), usecase.SyncBudgetInput{
			AllowSnapshot: true,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		summary, err := m.container.BudgetSummaryUseCase().Execute(context.Background(), usecase.BudgetSummaryInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgBudgetSynced{Summary: summary, SyncedAt: sync.SyncedAt, FromSnapshot: sync.FromSnapshot}
	}
}

// syncSchedule returns a command that refreshes the roster and recomputes
// the weekly timetable.
func (m *Model) syncSchedule() tea.Cmd {
	return func() tea.Msg {
		sync, err := m.container.SyncScheduleUseCase().Execute(context.Background(), usecase.SyncScheduleInput{
			AllowSnapshot: true,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		week, err := m.container.WeekScheduleUseCase().Execute(context.Background(), usecase.WeekScheduleInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgScheduleSynced{Week: week, SyncedAt: sync.SyncedAt, FromSnapshot: sync.FromSnapshot}
	}
}

// toggleTask returns a command that flips completion on the given task.
func (m *Model) toggleTask(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{Task: out.Task}
	}
}

// deleteTask returns a command that deletes the given task.
func (m *Model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{ID: id}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{ID: id}
	}
}

// computeStats returns a command that recomputes the statistics panel.
func (m *Model) computeStats() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.TaskStatsUseCase().Execute(context.Background(), usecase.TaskStatsInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStats{Stats: out}
	}
}

// SelectedTask returns the currently selected task and whether one is selected.
func (m *Model) SelectedTask() (domain.Task, bool) {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return domain.Task{}, false
	}
	return item.task, true
}

// refreshTaskItems recomputes the visible task list from the store using
// the current view filter. Views are store-local, so this never blocks.
func (m *Model) refreshTaskItems() {
	out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
		View: m.taskView,
	})
	if err != nil {
		m.err = err
		return
	}
	now := m.container.Clock.Now()
	items := make([]list.Item, 0, len(out.Tasks))
	for _, task := range out.Tasks {
		items = append(items, taskItem{task: task, now: now})
	}
	m.taskList.SetItems(items)
}

// nextTaskView cycles pending -> urgent -> upcoming -> completed -> all.
func nextTaskView(v usecase.TaskView) usecase.TaskView {
	switch v {
	case usecase.ViewPending:
		return usecase.ViewUrgent
	case usecase.ViewUrgent:
		return usecase.ViewUpcoming
	case usecase.ViewUpcoming:
		return usecase.ViewCompleted
	case usecase.ViewCompleted:
		return usecase.ViewAll
	default:
		return usecase.ViewPending
	}
}
