package usecase

import (
	"context"

	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/store"
	"github.com/studentlife/campus/internal/views"
)

// BudgetSummaryInput contains the parameters for the budget summary.
type BudgetSummaryInput struct {
	Type domain.TransactionType // Optional filter for the Recent list
}

// BudgetSummaryOutput aggregates the budget dashboard in one pass.
// Fields are ordered to minimize memory padding.
type BudgetSummaryOutput struct {
	ByExpenseCategory []views.CategoryTotal
	ByIncomeCategory  []views.CategoryTotal
	MonthlyFlow       []views.MonthFlow
	Recent            []domain.Transaction
	TotalIncome       float64
	TotalExpenses     float64
	NetBalance        float64
	SavingsRate       float64 // Percentage, 0 when there is no income
}

// BudgetSummary computes the budget dashboard from the ledger snapshot.
type BudgetSummary struct {
	ledger *store.LedgerStore
	clock  domain.Clock
}

// NewBudgetSummary creates a new BudgetSummary use case.
func NewBudgetSummary(ledger *store.LedgerStore, clock domain.Clock) *BudgetSummary {
	return &BudgetSummary{
		ledger: ledger,
		clock:  clock,
	}
}

// Execute computes the summary.
func (uc *BudgetSummary) Execute(_ context.Context, in BudgetSummaryInput) (*BudgetSummaryOutput, error) {
	snapshot := uc.ledger.All()

	return &BudgetSummaryOutput{
		ByExpenseCategory: views.ByCategory(snapshot, domain.TransactionExpense),
		ByIncomeCategory:  views.ByCategory(snapshot, domain.TransactionIncome),
		MonthlyFlow:       views.MonthlyFlow(snapshot, uc.clock.Now()),
		Recent:            views.RecentFirst(snapshot, in.Type),
		TotalIncome:       views.TotalIncome(snapshot),
		TotalExpenses:     views.TotalExpenses(snapshot),
		NetBalance:        views.NetBalance(snapshot),
		SavingsRate:       views.SavingsRate(snapshot),
	}, nil
}
