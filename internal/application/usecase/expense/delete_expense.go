// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	snapshots   adapter.SnapshotLoader
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, snapshots adapter.SnapshotLoader) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		snapshots:   snapshots,
	}
}

// Execute removes the expense with the given id.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, session entity.Session, id string) error {
	if err := uc.expenseRepo.Delete(ctx, session, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", mapNotFound(err))
	}

	uc.snapshots.Invalidate(ctx, session.UserID)
	return nil
}
