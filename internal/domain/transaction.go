package domain

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// IsValid returns true if the transaction type is a known valid value.
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction represents a single budget entry (income or expense).
// Fields are ordered to minimize memory padding.
type Transaction struct {
	Date     time.Time       `json:"date"`            // Calendar date of the transaction
	ID       string          `json:"id"`              // Server-assigned identifier, immutable
	Owner    string          `json:"owner"`           // Owning user (email), immutable
	Category string          `json:"category"`        // Category label (required)
	Notes    string          `json:"notes,omitempty"` // Free text, bounded length
	Type     TransactionType `json:"type"`            // income / expense
	Amount   float64         `json:"amount"`          // Always > 0; sign carried by Type
}
