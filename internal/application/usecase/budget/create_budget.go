// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// CreateBudgetInput represents the input for creating a budget.
type CreateBudgetInput struct {
	Session entity.Session
	BudgetInput
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	snapshots  adapter.SnapshotLoader
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, snapshots adapter.SnapshotLoader) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		snapshots:  snapshots,
	}
}

// Execute validates and stores a new budget.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*entity.Budget, error) {
	draft, err := input.toDraft()
	if err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.Create(ctx, input.Session, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	uc.snapshots.Invalidate(ctx, input.Session.UserID)
	return budget, nil
}
