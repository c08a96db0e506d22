// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/analytics"
)

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	CategoryID    string
	CategoryName  string
	CategoryColor string
	CategoryIcon  string
	Amount        decimal.Decimal
	Percentage    decimal.Decimal
	ExpenseCount  int
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	TotalExpenses decimal.Decimal
	Categories    []CategoryBreakdownItem // Largest amount first
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	snapshots adapter.SnapshotLoader
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(snapshots adapter.SnapshotLoader) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		snapshots: snapshots,
	}
}

// Execute retrieves spending breakdown by category for the filtered expenses.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input DashboardInput) (*GetCategoryBreakdownOutput, error) {
	data, err := loadFiltered(ctx, uc.snapshots, input)
	if err != nil {
		return nil, err
	}

	summaries := analytics.SortByAmountDesc(analytics.CategorySummary(data.expenses))

	categories := make([]CategoryBreakdownItem, 0, len(summaries))
	for _, s := range summaries {
		categories = append(categories, CategoryBreakdownItem{
			CategoryID:    s.CategoryID,
			CategoryName:  data.index.Name(s.CategoryID),
			CategoryColor: data.index.Color(s.CategoryID),
			CategoryIcon:  data.index.Icon(s.CategoryID),
			Amount:        s.Amount,
			Percentage:    s.Percentage,
			ExpenseCount:  s.Count,
		})
	}

	return &GetCategoryBreakdownOutput{
		TotalExpenses: analytics.TotalOf(data.expenses),
		Categories:    categories,
	}, nil
}
