// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/infra/config"
	"github.com/studentlife/campus/internal/infra/logging"
	"github.com/studentlife/campus/internal/infra/restapi"
	"github.com/studentlife/campus/internal/infra/snapshot"
	"github.com/studentlife/campus/internal/store"
	"github.com/studentlife/campus/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory campus was invoked from
	DataDir string // Data directory for logs and the snapshot file
}

// defaultDataDir returns the campus data directory.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "campus")
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	Budget        domain.BudgetRepository
	Schedule      domain.ScheduleRepository
	Snapshot      domain.Snapshotter
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Session-scoped stores
	TaskStore   *store.TaskStore
	LedgerStore *store.LedgerStore
	RosterStore *store.RosterStore

	// Configuration
	Config Config
}

// New creates a new Container rooted at the given working directory.
func New(workDir string) (*Container, error) {
	cfg := Config{
		WorkDir: workDir,
		DataDir: defaultDataDir(),
	}

	configLoader := config.NewLoader(cfg.WorkDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))
	for _, w := range appConfig.Warnings {
		logger.Warn("", "config", w)
	}

	client := restapi.NewClient(appConfig.API)

	return &Container{
		Tasks:         restapi.NewTaskRepository(client),
		Budget:        restapi.NewBudgetRepository(client),
		Schedule:      restapi.NewScheduleRepository(client),
		Snapshot:      snapshot.New(cfg.DataDir),
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.WorkDir),
		Logger:        logger,
		TaskStore:     store.NewTaskStore(),
		LedgerStore:   store.NewLedgerStore(),
		RosterStore:   store.NewRosterStore(),
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	tasks domain.TaskRepository,
	budget domain.BudgetRepository,
	schedule domain.ScheduleRepository,
	snap domain.Snapshotter,
	clock domain.Clock,
	configLoader domain.ConfigLoader,
	logger domain.Logger,
) *Container {
	return &Container{
		Tasks:        tasks,
		Budget:       budget,
		Schedule:     schedule,
		Snapshot:     snap,
		Clock:        clock,
		ConfigLoader: configLoader,
		Logger:       logger,
		TaskStore:    store.NewTaskStore(),
		LedgerStore:  store.NewLedgerStore(),
		RosterStore:  store.NewRosterStore(),
		Config:       cfg,
	}
}

// Close releases held resources.
func (c *Container) Close() error {
	if l, ok := c.Logger.(*logging.Logger); ok {
		return l.Close()
	}
	return nil
}

// UseCase factory methods

// SyncTasksUseCase returns a new SyncTasks use case.
func (c *Container) SyncTasksUseCase() *usecase.SyncTasks {
	return usecase.NewSyncTasks(c.TaskStore, c.Tasks, c.Snapshot, c.ConfigLoader, c.Clock, c.Logger)
}

// SyncBudgetUseCase returns a new SyncBudget use case.
func (c *Container) SyncBudgetUseCase() *usecase.SyncBudget {
	return usecase.NewSyncBudget(c.LedgerStore, c.Budget, c.Snapshot, c.ConfigLoader, c.Clock, c.Logger)
}

// SyncScheduleUseCase returns a new SyncSchedule use case.
func (c *Container) SyncScheduleUseCase() *usecase.SyncSchedule {
	return usecase.NewSyncSchedule(c.RosterStore, c.Schedule, c.Snapshot, c.ConfigLoader, c.Clock, c.Logger)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.TaskStore, c.Tasks, c.ConfigLoader, c.Logger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.TaskStore, c.Tasks, c.ConfigLoader, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.TaskStore, c.Tasks, c.ConfigLoader, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.TaskStore, c.Tasks, c.ConfigLoader, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.TaskStore, c.Clock)
}

// TaskStatsUseCase returns a new TaskStats use case.
func (c *Container) TaskStatsUseCase() *usecase.TaskStats {
	return usecase.NewTaskStats(c.TaskStore, c.Clock)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.TaskStore, c.Tasks, c.ConfigLoader, c.Logger)
}

// AddTransactionUseCase returns a new AddTransaction use case.
func (c *Container) AddTransactionUseCase() *usecase.AddTransaction {
	return usecase.NewAddTransaction(c.LedgerStore, c.Budget, c.ConfigLoader, c.Clock, c.Logger)
}

// DeleteTransactionUseCase returns a new DeleteTransaction use case.
func (c *Container) DeleteTransactionUseCase() *usecase.DeleteTransaction {
	return usecase.NewDeleteTransaction(c.LedgerStore, c.Budget, c.ConfigLoader, c.Logger)
}

// BudgetSummaryUseCase returns a new BudgetSummary use case.
func (c *Container) BudgetSummaryUseCase() *usecase.BudgetSummary {
	return usecase.NewBudgetSummary(c.LedgerStore, c.Clock)
}

// AddClassUseCase returns a new AddClass use case.
func (c *Container) AddClassUseCase() *usecase.AddClass {
	return usecase.NewAddClass(c.RosterStore, c.Schedule, c.ConfigLoader, c.Logger)
}

// DeleteClassUseCase returns a new DeleteClass use case.
func (c *Container) DeleteClassUseCase() *usecase.DeleteClass {
	return usecase.NewDeleteClass(c.RosterStore, c.Schedule, c.ConfigLoader, c.Logger)
}

// WeekScheduleUseCase returns a new WeekSchedule use case.
func (c *Container) WeekScheduleUseCase() *usecase.WeekSchedule {
	return usecase.NewWeekSchedule(c.RosterStore)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
