package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Header, status line, and help take vertical space
		m.taskList.SetSize(msg.Width-2, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgTasksSynced:
		m.loading = false
		m.err = nil
		m.offline = msg.FromSnapshot
		m.syncedAt = msg.SyncedAt
		m.refreshTaskItems()
		return m, m.computeStats()

	case MsgBudgetSynced:
		m.budget = msg.Summary
		if msg.FromSnapshot {
			m.offline = true
		}
		return m, nil

	case MsgScheduleSynced:
		m.week = msg.Week
		if msg.FromSnapshot {
			m.offline = true
		}
		return m, nil

	case MsgTaskToggled, MsgTaskDeleted:
		m.err = nil
		m.refreshTaskItems()
		return m, m.computeStats()

	case MsgStats:
		m.stats = msg.Stats
		return m, nil

	case MsgError:
		m.loading = false
		m.err = msg.Err
		return m, nil

	default:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// handleKey routes keypresses by interaction mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeConfirmDelete {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			id := m.confirmID
			m.mode = ModeNormal
			m.confirmID = ""
			return m, m.deleteTask(id)
		case key.Matches(msg, m.keys.Escape):
			m.mode = ModeNormal
			m.confirmID = ""
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.tab = m.tab.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = m.tab.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.syncTasks(), m.syncBudget(), m.syncSchedule(), m.spinner.Tick)
	}

	if m.tab != TabTasks {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.View):
		m.taskView = nextTaskView(m.taskView)
		m.refreshTaskItems()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.SelectedTask(); ok {
			return m, m.toggleTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.SelectedTask(); ok {
			m.mode = ModeConfirmDelete
			m.confirmID = task.ID
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}
