package domain

import (
	"strconv"
	"strings"
	"time"
)

// TransactionForm holds raw form input for recording a budget transaction.
type TransactionForm struct {
	Type     string
	Category string
	Amount   string
	Date     string // YYYY-MM-DD; empty means today
	Notes    string
}

// Validate checks the form and returns a normalized transaction payload.
// The returned transaction has no ID or Owner. today supplies the default
// date so validation stays deterministic.
func (f TransactionForm) Validate(today time.Time) (*Transaction, error) {
	txType := TransactionType(strings.TrimSpace(f.Type))
	if txType == "" {
		return nil, NewValidationError(ReasonMissingField, "type")
	}
	if !txType.IsValid() {
		return nil, NewValidationError(ReasonInvalidType, "type")
	}

	category := strings.TrimSpace(f.Category)
	if category == "" {
		return nil, NewValidationError(ReasonMissingField, "category")
	}

	if strings.TrimSpace(f.Amount) == "" {
		return nil, NewValidationError(ReasonMissingField, "amount")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(f.Amount), 64)
	if err != nil || amount <= 0 {
		return nil, NewValidationError(ReasonInvalidAmount, "amount")
	}

	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if strings.TrimSpace(f.Date) != "" {
		date, err = time.ParseInLocation("2006-01-02", strings.TrimSpace(f.Date), today.Location())
		if err != nil {
			return nil, NewValidationError(ReasonInvalidDeadline, "date")
		}
	}

	return &Transaction{
		Type:     txType,
		Category: category,
		Amount:   amount,
		Date:     date,
		Notes:    f.Notes,
	}, nil
}
