package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// CategoryRepository implements adapter.CategoryRepository over the remote service.
type CategoryRepository struct {
	client *Client
}

// NewCategoryRepository creates a new CategoryRepository instance.
func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

// List retrieves the categories of the caller.
func (r *CategoryRepository) List(ctx context.Context, session entity.Session) ([]entity.Category, error) {
	raw, err := doJSON[listPayload[json.RawMessage]](ctx, r.client, http.MethodGet, "/categories", session.AccessToken, nil)
	if err != nil {
		return nil, err
	}

	return decodeEach(raw.Items, "category", session.UserID, func(p categoryPayload) (entity.Category, error) {
		return p.toEntity()
	}), nil
}
