// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// UpdateBudgetInput represents the input for updating a budget.
type UpdateBudgetInput struct {
	Session entity.Session
	ID      string
	BudgetInput
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	snapshots  adapter.SnapshotLoader
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, snapshots adapter.SnapshotLoader) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		snapshots:  snapshots,
	}
}

// Execute validates and replaces the editable fields of a budget.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*entity.Budget, error) {
	draft, err := input.toDraft()
	if err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.Update(ctx, input.Session, input.ID, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", mapNotFound(err))
	}

	uc.snapshots.Invalidate(ctx, input.Session.UserID)
	return budget, nil
}
