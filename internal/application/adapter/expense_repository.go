// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense data source operations.
// Every call acts on behalf of the session owner.
type ExpenseRepository interface {
	// List retrieves every expense of the session owner.
	List(ctx context.Context, session entity.Session) ([]entity.Expense, error)

	// Create records a new expense and returns it as stored.
	Create(ctx context.Context, session entity.Session, draft entity.ExpenseDraft) (*entity.Expense, error)

	// Update replaces the editable fields of an expense.
	Update(ctx context.Context, session entity.Session, id string, draft entity.ExpenseDraft) (*entity.Expense, error)

	// Delete removes an expense.
	Delete(ctx context.Context, session entity.Session, id string) error
}
