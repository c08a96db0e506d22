// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/analytics"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Session entity.Session
	Filter  analytics.FilterSpec
	Limit   int // Zero or negative means no limit
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses     []ExpenseOutput
	MatchedCount int             // Expenses matching the filter before the limit
	MatchedTotal decimal.Decimal // Sum of all matching expenses
	OverallCount int             // Expenses of the user before filtering
}

// ExpenseOutput is an expense with its category display attributes resolved.
type ExpenseOutput struct {
	entity.Expense
	CategoryName  string
	CategoryColor string
	CategoryIcon  string
}

// ListExpensesUseCase handles listing and filtering expenses.
type ListExpensesUseCase struct {
	snapshots adapter.SnapshotLoader
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(snapshots adapter.SnapshotLoader) *ListExpensesUseCase {
	return &ListExpensesUseCase{snapshots: snapshots}
}

// Execute returns the expenses matching the filter, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if err := input.Filter.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := uc.snapshots.Execute(ctx, input.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	matched := analytics.Filter(snapshot.Expenses, input.Filter)
	ordered := analytics.Recent(matched, limitOrAll(input.Limit))
	index := entity.NewCategoryIndex(snapshot.Categories)

	return &ListExpensesOutput{
		Expenses:     toOutputs(ordered, index),
		MatchedCount: len(matched),
		MatchedTotal: analytics.TotalOf(matched),
		OverallCount: len(snapshot.Expenses),
	}, nil
}

func limitOrAll(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

func toOutputs(expenses []entity.Expense, index *entity.CategoryIndex) []ExpenseOutput {
	out := make([]ExpenseOutput, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toOutput(e, index))
	}
	return out
}

func toOutput(e entity.Expense, index *entity.CategoryIndex) ExpenseOutput {
	return ExpenseOutput{
		Expense:       e,
		CategoryName:  index.Name(e.CategoryID),
		CategoryColor: index.Color(e.CategoryID),
		CategoryIcon:  index.Icon(e.CategoryID),
	}
}
