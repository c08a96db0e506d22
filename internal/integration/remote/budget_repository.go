package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// BudgetRepository implements adapter.BudgetRepository over the remote service.
type BudgetRepository struct {
	client *Client
}

// NewBudgetRepository creates a new BudgetRepository instance.
func NewBudgetRepository(client *Client) *BudgetRepository {
	return &BudgetRepository{client: client}
}

// List retrieves every budget of the caller, dropping malformed records.
func (r *BudgetRepository) List(ctx context.Context, session entity.Session) ([]entity.Budget, error) {
	raw, err := doJSON[listPayload[json.RawMessage]](ctx, r.client, http.MethodGet, "/budget", session.AccessToken, nil)
	if err != nil {
		return nil, err
	}

	return decodeEach(raw.Items, "budget", session.UserID, func(p budgetPayload) (entity.Budget, error) {
		return p.toEntity()
	}), nil
}

// Create stores a new budget.
func (r *BudgetRepository) Create(ctx context.Context, session entity.Session, draft entity.BudgetDraft) (*entity.Budget, error) {
	payload, err := doJSON[budgetPayload](ctx, r.client, http.MethodPost, "/budget", session.AccessToken, newBudgetRequest(draft))
	if err != nil {
		return nil, err
	}
	return storedBudget(*payload)
}

// Update replaces the editable fields of a budget.
func (r *BudgetRepository) Update(ctx context.Context, session entity.Session, id string, draft entity.BudgetDraft) (*entity.Budget, error) {
	path := "/budget/" + url.PathEscape(id)
	payload, err := doJSON[budgetPayload](ctx, r.client, http.MethodPut, path, session.AccessToken, newBudgetRequest(draft))
	if err != nil {
		return nil, err
	}
	return storedBudget(*payload)
}

// Delete removes a budget.
func (r *BudgetRepository) Delete(ctx context.Context, session entity.Session, id string) error {
	return doNoContent(ctx, r.client, http.MethodDelete, "/budget/"+url.PathEscape(id), session.AccessToken)
}

func storedBudget(p budgetPayload) (*entity.Budget, error) {
	budget, err := p.toEntity()
	if err != nil {
		return nil, malformed("budget", err)
	}
	return &budget, nil
}
