package tui

import (
	"time"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/usecase"
)

// Msg is the sealed interface for all dashboard messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgTasksSynced is sent when the task store has been refreshed.
type MsgTasksSynced struct {
	SyncedAt     time.Time
	Tasks        []domain.Task
	FromSnapshot bool
}

func (MsgTasksSynced) sealed() {}

// MsgBudgetSynced is sent when the budget summary has been refreshed.
type MsgBudgetSynced struct {
	Summary      *usecase.BudgetSummaryOutput
	SyncedAt     time.Time
	FromSnapshot bool
}

func (MsgBudgetSynced) sealed() {}

// MsgScheduleSynced is sent when the weekly schedule has been refreshed.
type MsgScheduleSynced struct {
	Week         *usecase.WeekScheduleOutput
	SyncedAt     time.Time
	FromSnapshot bool
}

func (MsgScheduleSynced) sealed() {}

// MsgTaskToggled is sent when a task's completion was flipped.
type MsgTaskToggled struct {
	Task domain.Task
}

func (MsgTaskToggled) sealed() {}

// MsgTaskDeleted is sent when a task was deleted.
type MsgTaskDeleted struct {
	ID string
}

func (MsgTaskDeleted) sealed() {}

// MsgStats is sent when the statistics panel has been recomputed.
type MsgStats struct {
	Stats *usecase.TaskStatsOutput
}

func (MsgStats) sealed() {}

// MsgError is sent when a background operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
