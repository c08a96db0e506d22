// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// BudgetRepository defines the interface for budget data source operations.
type BudgetRepository interface {
	// List retrieves every budget of the session owner.
	List(ctx context.Context, session entity.Session) ([]entity.Budget, error)

	// Create stores a new budget and returns it as stored.
	Create(ctx context.Context, session entity.Session, draft entity.BudgetDraft) (*entity.Budget, error)

	// Update replaces the editable fields of a budget.
	Update(ctx context.Context, session entity.Session, id string, draft entity.BudgetDraft) (*entity.Budget, error)

	// Delete removes a budget.
	Delete(ctx context.Context, session entity.Session, id string) error
}
