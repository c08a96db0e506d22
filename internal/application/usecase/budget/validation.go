// Package budget contains budget-related use cases.
package budget

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/domain/analytics"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// OverallBudgetName labels budgets without a category restriction.
const OverallBudgetName = "Overall Budget"

// BudgetInput holds the user-supplied fields of a budget.
type BudgetInput struct {
	Amount     decimal.Decimal
	Month      string
	CategoryID *string // Nil, empty or "all" means every category
}

func (in BudgetInput) toDraft() (entity.BudgetDraft, error) {
	if !in.Amount.IsPositive() {
		return entity.BudgetDraft{}, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	month, err := entity.ParseMonthKey(strings.TrimSpace(in.Month))
	if err != nil {
		return entity.BudgetDraft{}, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	var categoryID *string
	if in.CategoryID != nil {
		id := strings.TrimSpace(*in.CategoryID)
		if id != "" && id != analytics.AllCategories {
			categoryID = &id
		}
	}

	return entity.BudgetDraft{Amount: in.Amount, Month: month, CategoryID: categoryID}, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, domainerror.ErrRemoteNotFound) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	return err
}

// categoryName returns the display name of the budget's scope.
func categoryName(b entity.Budget, index *entity.CategoryIndex) string {
	if b.CoversAllCategories() {
		return OverallBudgetName
	}
	return index.Name(*b.CategoryID)
}
