// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// UpdateExpenseInput represents the input for updating an expense.
type UpdateExpenseInput struct {
	Session entity.Session
	ID      string
	ExpenseInput
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	snapshots   adapter.SnapshotLoader
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, snapshots adapter.SnapshotLoader) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		snapshots:   snapshots,
	}
}

// Execute validates and replaces the editable fields of an expense.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*entity.Expense, error) {
	draft, err := input.toDraft()
	if err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.Update(ctx, input.Session, input.ID, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", mapNotFound(err))
	}

	uc.snapshots.Invalidate(ctx, input.Session.UserID)
	return expense, nil
}
