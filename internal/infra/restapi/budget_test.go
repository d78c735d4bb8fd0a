package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentlife/campus/internal/domain"
)

func TestBudgetRepository_ListByOwner(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/budget", r.URL.Path)
		assert.Equal(t, "alice@example.com", r.URL.Query().Get("email"))

		_, _ = w.Write([]byte(`[
			{"_id":"x1","email":"alice@example.com","type":"income","category":"Scholarship","amount":1200,"date":"2025-03-01"},
			{"_id":"x2","email":"alice@example.com","type":"expense","category":"Books","amount":150.5,"date":"2025-03-03T10:00:00.000Z"}
		]`))
	})

	txs, err := NewBudgetRepository(client).ListByOwner(context.Background(), "alice@example.com")

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, domain.TransactionIncome, txs[0].Type)
	assert.Equal(t, 1200.0, txs[0].Amount)
	assert.Equal(t, "2025-03-03", txs[1].Date.Format("2006-01-02"))
}

func TestBudgetRepository_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var dto map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		assert.Equal(t, "expense", dto["type"])
		assert.Equal(t, "2025-03-05", dto["date"])

		dto["_id"] = "x-new"
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": dto})
	})

	tx := domain.Transaction{
		Owner:    "alice@example.com",
		Type:     domain.TransactionExpense,
		Category: "Food",
		Amount:   25,
		Date:     mustDate(t, "2025-03-05"),
	}
	created, err := NewBudgetRepository(client).Create(context.Background(), tx)

	require.NoError(t, err)
	assert.Equal(t, "x-new", created.ID)
	assert.Equal(t, "Food", created.Category)
}

func TestBudgetRepository_Delete_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := NewBudgetRepository(client).Delete(context.Background(), "gone", "alice@example.com")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScheduleRepository_RoundTrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/classes", r.URL.Path)
			_, _ = w.Write([]byte(`[
				{"_id":"c1","email":"alice@example.com","subject":"Physics","instructor":"Dr. Webb",
				 "day":"Monday","startTime":"09:00","endTime":"10:30","location":"Lab 2"}
			]`))
		case http.MethodPost:
			var dto map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
			dto["_id"] = "c-new"
			_ = json.NewEncoder(w).Encode(dto)
		case http.MethodDelete:
			assert.Equal(t, "/classes/c1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	})
	repo := NewScheduleRepository(client)

	classes, err := repo.ListByOwner(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, domain.Monday, classes[0].Day)
	assert.Equal(t, "Lab 2", classes[0].Location)

	created, err := repo.Create(context.Background(), domain.Class{
		Owner:      "alice@example.com",
		Subject:    "Chemistry",
		Instructor: "Dr. Park",
		Day:        domain.Friday,
		StartTime:  "11:00",
		EndTime:    "12:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "c-new", created.ID)

	assert.NoError(t, repo.Delete(context.Background(), "c1", "alice@example.com"))
}
