// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	snapshots  adapter.SnapshotLoader
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository, snapshots adapter.SnapshotLoader) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		snapshots:  snapshots,
	}
}

// Execute removes the budget with the given id.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, session entity.Session, id string) error {
	if err := uc.budgetRepo.Delete(ctx, session, id); err != nil {
		return fmt.Errorf("failed to delete budget: %w", mapNotFound(err))
	}

	uc.snapshots.Invalidate(ctx, session.UserID)
	return nil
}
