package usecase

import (
	"context"
	"fmt"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
)

// AddClassInput contains the parameters for adding a class.
type AddClassInput struct {
	Form  domain.ClassForm
	Owner string // Owner override (optional, falls back to config)
}

// AddClassOutput contains the result of adding a class.
// Fields are ordered to minimize memory padding.
type AddClassOutput struct {
	Class    domain.Class
	Overlaps []domain.Class // Same-day classes whose time range overlaps the new one
}

// AddClass validates a class form and persists it. Overlapping classes on
// the same day are reported but not rejected; back-to-back or deliberately
// overlapping entries are the student's call.
type AddClass struct {
	roster *store.RosterStore
	repo   domain.ScheduleRepository
	config domain.ConfigLoader
	logger domain.Logger
}

// NewAddClass creates a new AddClass use case.
func NewAddClass(
	roster *store.RosterStore,
	repo domain.ScheduleRepository,
	config domain.ConfigLoader,
	logger domain.Logger,
) *AddClass {
	return &AddClass{
		roster: roster,
		repo:   repo,
		config: config,
		logger: logger,
	}
}

// Execute adds the class.
func (uc *AddClass) Execute(ctx context.Context, in AddClassInput) (*AddClassOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	owner, err := resolveOwner(cfg, in.Owner)
	if err != nil {
		return nil, err
	}

	class, err := in.Form.Validate()
	if err != nil {
		return nil, err
	}
	class.Owner = owner

	var overlaps []domain.Class
	for _, existing := range uc.roster.All() {
		if existing.Day == class.Day && overlapsTimeRange(existing, *class) {
			overlaps = append(overlaps, existing)
		}
	}

	created, err := uc.repo.Create(ctx, *class)
	if err != nil {
		return nil, err
	}

	uc.roster.Add(created)
	if uc.logger != nil {
		uc.logger.Info("schedule", "create", fmt.Sprintf("added %s on %s %s-%s", created.Subject, created.Day, created.StartTime, created.EndTime))
	}

	return &AddClassOutput{Class: created, Overlaps: overlaps}, nil
}

// overlapsTimeRange reports whether two classes share any minute. HH:MM
// strings compare correctly lexicographically.
func overlapsTimeRange(a, b domain.Class) bool {
	return a.StartTime < b.EndTime && b.StartTime < a.EndTime
}
