// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// CreateExpenseInput represents the input for creating an expense.
type CreateExpenseInput struct {
	Session entity.Session
	ExpenseInput
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	snapshots   adapter.SnapshotLoader
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, snapshots adapter.SnapshotLoader) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		snapshots:   snapshots,
	}
}

// Execute validates and records a new expense.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*entity.Expense, error) {
	draft, err := input.toDraft()
	if err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.Create(ctx, input.Session, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	uc.snapshots.Invalidate(ctx, input.Session.UserID)
	return expense, nil
}
