// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// CategoryRepository defines the interface for category data source operations.
type CategoryRepository interface {
	// List retrieves the categories visible to the session owner.
	List(ctx context.Context, session entity.Session) ([]entity.Category, error)
}
