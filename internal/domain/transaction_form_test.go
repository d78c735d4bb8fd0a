package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2025, 3, 15, 14, 22, 0, 0, time.UTC)

func TestTransactionForm_Validate_Success(t *testing.T) {
	tx, err := TransactionForm{
		Type:     "expense",
		Category: "food",
		Amount:   "12.50",
		Date:     "2025-03-10",
		Notes:    "lunch",
	}.Validate(testToday)

	require.NoError(t, err)
	assert.Equal(t, TransactionExpense, tx.Type)
	assert.Equal(t, "food", tx.Category)
	assert.InDelta(t, 12.50, tx.Amount, 0.001)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "lunch", tx.Notes)
}

func TestTransactionForm_Validate_DateDefaultsToToday(t *testing.T) {
	tx, err := TransactionForm{
		Type:     "income",
		Category: "scholarship",
		Amount:   "500",
	}.Validate(testToday)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), tx.Date)
}

func TestTransactionForm_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		form   TransactionForm
		reason string
	}{
		{"missing type", TransactionForm{Category: "food", Amount: "5"}, ReasonMissingField},
		{"bad type", TransactionForm{Type: "transfer", Category: "food", Amount: "5"}, ReasonInvalidType},
		{"missing category", TransactionForm{Type: "expense", Amount: "5"}, ReasonMissingField},
		{"missing amount", TransactionForm{Type: "expense", Category: "food"}, ReasonMissingField},
		{"zero amount", TransactionForm{Type: "expense", Category: "food", Amount: "0"}, ReasonInvalidAmount},
		{"negative amount", TransactionForm{Type: "expense", Category: "food", Amount: "-3"}, ReasonInvalidAmount},
		{"bad amount", TransactionForm{Type: "expense", Category: "food", Amount: "lots"}, ReasonInvalidAmount},
		{"bad date", TransactionForm{Type: "expense", Category: "food", Amount: "5", Date: "soon"}, ReasonInvalidDeadline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.form.Validate(testToday)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.reason, verr.Reason)
		})
	}
}

func TestClassForm_Validate_Success(t *testing.T) {
	class, err := ClassForm{
		Subject:    "Physics",
		Instructor: "Dr. Rahman",
		Day:        "Monday",
		StartTime:  "09:00",
		EndTime:    "10:30",
		Location:   "Hall B",
	}.Validate()

	require.NoError(t, err)
	assert.Equal(t, Monday, class.Day)
	assert.Equal(t, 90*time.Minute, class.Length())
}

func TestClassForm_Validate_Errors(t *testing.T) {
	base := ClassForm{
		Subject:    "Physics",
		Instructor: "Dr. Rahman",
		Day:        "Monday",
		StartTime:  "09:00",
		EndTime:    "10:30",
	}

	tests := []struct {
		name   string
		mutate func(*ClassForm)
		reason string
	}{
		{"missing subject", func(f *ClassForm) { f.Subject = "" }, ReasonMissingField},
		{"missing instructor", func(f *ClassForm) { f.Instructor = "" }, ReasonMissingField},
		{"bad day", func(f *ClassForm) { f.Day = "Funday" }, ReasonInvalidDay},
		{"bad start", func(f *ClassForm) { f.StartTime = "9am" }, ReasonInvalidTimeSlot},
		{"end before start", func(f *ClassForm) { f.StartTime = "11:00"; f.EndTime = "10:00" }, ReasonEndBeforeStart},
		{"zero length", func(f *ClassForm) { f.EndTime = "09:00" }, ReasonEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := base
			tt.mutate(&form)

			_, err := form.Validate()

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.reason, verr.Reason)
		})
	}
}
