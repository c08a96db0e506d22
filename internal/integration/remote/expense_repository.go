package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// ExpenseRepository implements adapter.ExpenseRepository over the remote service.
type ExpenseRepository struct {
	client *Client
}

// NewExpenseRepository creates a new ExpenseRepository instance.
func NewExpenseRepository(client *Client) *ExpenseRepository {
	return &ExpenseRepository{client: client}
}

// List retrieves every expense, dropping records that fail validation.
func (r *ExpenseRepository) List(ctx context.Context, session entity.Session) ([]entity.Expense, error) {
	raw, err := doJSON[listPayload[json.RawMessage]](ctx, r.client, http.MethodGet, "/expenses", session.AccessToken, nil)
	if err != nil {
		return nil, err
	}

	return decodeEach(raw.Items, "expense", session.UserID, func(p expensePayload) (entity.Expense, error) {
		return p.toEntity()
	}), nil
}

// Create records a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, session entity.Session, draft entity.ExpenseDraft) (*entity.Expense, error) {
	payload, err := doJSON[expensePayload](ctx, r.client, http.MethodPost, "/expenses", session.AccessToken, newExpenseRequest(draft))
	if err != nil {
		return nil, err
	}
	return storedExpense(*payload)
}

// Update replaces the editable fields of an expense.
func (r *ExpenseRepository) Update(ctx context.Context, session entity.Session, id string, draft entity.ExpenseDraft) (*entity.Expense, error) {
	path := "/expenses/" + url.PathEscape(id)
	payload, err := doJSON[expensePayload](ctx, r.client, http.MethodPut, path, session.AccessToken, newExpenseRequest(draft))
	if err != nil {
		return nil, err
	}
	return storedExpense(*payload)
}

// Delete removes an expense.
func (r *ExpenseRepository) Delete(ctx context.Context, session entity.Session, id string) error {
	return doNoContent(ctx, r.client, http.MethodDelete, "/expenses/"+url.PathEscape(id), session.AccessToken)
}

func storedExpense(p expensePayload) (*entity.Expense, error) {
	expense, err := p.toEntity()
	if err != nil {
		return nil, malformed("expense", err)
	}
	return &expense, nil
}

// decodeEach converts raw list items one by one so a single bad record does
// not hide the rest of the collection.
func decodeEach[P any, E any](items []json.RawMessage, kind, userID string, convert func(P) (E, error)) []E {
	out := make([]E, 0, len(items))
	for i, item := range items {
		var payload P
		if err := json.Unmarshal(item, &payload); err != nil {
			slog.Warn("Dropped undecodable remote record",
				"kind", kind,
				"index", i,
				"user_id", userID,
				"error", err,
			)
			continue
		}

		value, err := convert(payload)
		if err != nil {
			slog.Warn("Dropped invalid remote record",
				"kind", kind,
				"index", i,
				"user_id", userID,
				"error", err,
			)
			continue
		}
		out = append(out, value)
	}
	return out
}

func malformed(kind string, err error) error {
	return domainerror.NewRemoteError(
		domainerror.ErrCodeMalformedPayload,
		0,
		fmt.Sprintf("remote service returned an invalid %s", kind),
		fmt.Errorf("%w: %w", domainerror.ErrMalformedPayload, err),
	)
}
