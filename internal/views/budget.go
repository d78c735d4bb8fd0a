package views

import (
	"time"

	"github.com/studentlife/campus/internal/domain"
)

// MonthlyWindow is how many trailing months MonthlyFlow covers.
const MonthlyWindow = 6

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(txs []domain.Transaction) float64 {
	total := 0.0
	for _, t := range txs {
		if t.Type == domain.TransactionIncome {
			total += t.Amount
		}
	}
	return total
}

// TotalExpenses sums the amounts of all expense transactions.
func TotalExpenses(txs []domain.Transaction) float64 {
	total := 0.0
	for _, t := range txs {
		if t.Type == domain.TransactionExpense {
			total += t.Amount
		}
	}
	return total
}

// NetBalance is income minus expenses.
func NetBalance(txs []domain.Transaction) float64 {
	return TotalIncome(txs) - TotalExpenses(txs)
}

// SavingsRate is the percentage of income not spent, 0 when there is no
// income.
func SavingsRate(txs []domain.Transaction) float64 {
	income := TotalIncome(txs)
	if income <= 0 {
		return 0
	}
	return (income - TotalExpenses(txs)) / income * 100
}

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string
	Total    float64
}

// ByCategory sums amounts per category for the given transaction type.
// Categories appear in first-seen input order; zero categories are absent
// by construction.
func ByCategory(txs []domain.Transaction, txType domain.TransactionType) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, t := range txs {
		if t.Type != txType {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryTotal{Category: t.Category})
		}
		out[i].Total += t.Amount
	}
	return out
}

// MonthFlow is the income/expense totals for one calendar month.
type MonthFlow struct {
	Month    time.Time // First day of the month
	Label    string    // e.g. "Mar 2025"
	Income   float64
	Expenses float64
}

// MonthlyFlow returns income and expense totals for the trailing 6 calendar
// months (current month included), oldest first.
func MonthlyFlow(txs []domain.Transaction, now time.Time) []MonthFlow {
	out := make([]MonthFlow, 0, MonthlyWindow)
	for offset := MonthlyWindow - 1; offset >= 0; offset-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -offset, 0)
		flow := MonthFlow{Month: month, Label: month.Format("Jan 2006")}
		for _, t := range txs {
			if t.Date.Year() != month.Year() || t.Date.Month() != month.Month() {
				continue
			}
			switch t.Type {
			case domain.TransactionIncome:
				flow.Income += t.Amount
			case domain.TransactionExpense:
				flow.Expenses += t.Amount
			}
		}
		out = append(out, flow)
	}
	return out
}

// RecentFirst returns the transactions in reverse insertion order, newest
// append first, optionally filtered by type (empty type matches all).
func RecentFirst(txs []domain.Transaction, txType domain.TransactionType) []domain.Transaction {
	var out []domain.Transaction
	for i := len(txs) - 1; i >= 0; i-- {
		if txType != "" && txs[i].Type != txType {
			continue
		}
		out = append(out, txs[i])
	}
	return out
}
