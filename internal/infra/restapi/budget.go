package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/studentlife/campus/internal/domain"
)

// Ensure BudgetRepository implements the domain contract.
var _ domain.BudgetRepository = (*BudgetRepository)(nil)

// BudgetRepository talks to the /budget endpoints.
type BudgetRepository struct {
	client *Client
}

// NewBudgetRepository creates a BudgetRepository on the shared client.
func NewBudgetRepository(client *Client) *BudgetRepository {
	return &BudgetRepository{client: client}
}

// transactionDTO is the wire representation of a budget transaction.
type transactionDTO struct {
	ID       string  `json:"_id,omitempty"`
	Email    string  `json:"email"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Notes    string  `json:"notes,omitempty"`
	Amount   float64 `json:"amount"`
	Date     apiDate `json:"date"`
}

func (d transactionDTO) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:       d.ID,
		Owner:    d.Email,
		Type:     domain.TransactionType(d.Type),
		Category: d.Category,
		Notes:    d.Notes,
		Amount:   d.Amount,
		Date:     d.Date.Time,
	}
}

func transactionToDTO(t domain.Transaction) transactionDTO {
	return transactionDTO{
		ID:       t.ID,
		Email:    t.Owner,
		Type:     string(t.Type),
		Category: t.Category,
		Notes:    t.Notes,
		Amount:   t.Amount,
		Date:     apiDate{t.Date},
	}
}

// ListByOwner retrieves all transactions belonging to owner.
func (r *BudgetRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Transaction, error) {
	req, err := r.client.newRequest(ctx, http.MethodGet, "/budget", url.Values{"email": {owner}}, nil)
	if err != nil {
		return nil, domain.NewFetchError("list transactions", err)
	}

	var dtos []transactionDTO
	if err := r.client.do(req, "list transactions", &dtos); err != nil {
		return nil, err
	}

	txs := make([]domain.Transaction, 0, len(dtos))
	for _, d := range dtos {
		txs = append(txs, d.toDomain())
	}
	return txs, nil
}

// Create persists a new transaction and returns it with the assigned ID.
func (r *BudgetRepository) Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	req, err := r.client.newRequest(ctx, http.MethodPost, "/budget", nil, transactionToDTO(tx))
	if err != nil {
		return domain.Transaction{}, domain.NewFetchError("create transaction", err)
	}

	var dto transactionDTO
	if err := r.client.do(req, "create transaction", &dto); err != nil {
		return domain.Transaction{}, err
	}
	return dto.toDomain(), nil
}

// Delete removes a transaction.
func (r *BudgetRepository) Delete(ctx context.Context, id, owner string) error {
	req, err := r.client.newRequest(ctx, http.MethodDelete, "/budget/"+url.PathEscape(id), url.Values{"email": {owner}}, nil)
	if err != nil {
		return domain.NewFetchError("delete transaction", err)
	}
	return r.client.do(req, "delete transaction", nil)
}
