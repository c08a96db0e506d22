// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/analytics"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// RecentExpensesLimit is the number of expenses shown on the dashboard.
const RecentExpensesLimit = 5

// GetSummaryOutput holds the summary cards of the dashboard.
type GetSummaryOutput struct {
	TotalExpenses     decimal.Decimal
	CurrentMonthTotal decimal.Decimal
	AverageExpense    decimal.Decimal
	ExpenseCount      int
	TopCategory       TopCategoryItem
	OverallBudget     *entity.BudgetStatus // Nil when the current month has no budget
	RecentExpenses    []RecentExpenseItem
	CurrentMonth      entity.MonthKey
}

// TopCategoryItem is the top category with its display name.
type TopCategoryItem struct {
	CategoryID   string
	CategoryName string
	Amount       decimal.Decimal
}

// RecentExpenseItem is a recent expense with its category display attributes.
type RecentExpenseItem struct {
	entity.Expense
	CategoryName  string
	CategoryColor string
}

// GetSummaryUseCase computes the dashboard summary cards.
type GetSummaryUseCase struct {
	snapshots adapter.SnapshotLoader
	now       func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(snapshots adapter.SnapshotLoader) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		snapshots: snapshots,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to find the current month.
func (uc *GetSummaryUseCase) WithClock(now func() time.Time) *GetSummaryUseCase {
	uc.now = now
	return uc
}

// Execute computes the summary over the filtered expenses. The overall budget
// card ignores the filter and compares every expense of the current month
// against the sum of that month's budgets.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input DashboardInput) (*GetSummaryOutput, error) {
	data, err := loadFiltered(ctx, uc.snapshots, input)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	agg := analytics.Aggregate(data.expenses, now)

	top := TopCategoryItem{
		CategoryID:   agg.TopCategory.CategoryID,
		CategoryName: entity.NoneCategory,
		Amount:       agg.TopCategory.Amount,
	}
	if !agg.TopCategory.IsNone() {
		top.CategoryName = data.index.Name(agg.TopCategory.CategoryID)
	}

	output := &GetSummaryOutput{
		TotalExpenses:     agg.GrandTotal,
		CurrentMonthTotal: agg.CurrentMonthTotal,
		AverageExpense:    agg.Average,
		ExpenseCount:      agg.Count,
		TopCategory:       top,
		CurrentMonth:      entity.MonthKeyOf(now),
	}

	if overall, ok := analytics.OverallBudget(data.snapshot.Budgets, output.CurrentMonth); ok {
		status, err := analytics.EvaluateBudget(overall, data.snapshot.Expenses)
		if err == nil {
			output.OverallBudget = &status
		}
	}

	recent := analytics.Recent(data.expenses, RecentExpensesLimit)
	output.RecentExpenses = make([]RecentExpenseItem, 0, len(recent))
	for _, e := range recent {
		output.RecentExpenses = append(output.RecentExpenses, RecentExpenseItem{
			Expense:       e,
			CategoryName:  data.index.Name(e.CategoryID),
			CategoryColor: data.index.Color(e.CategoryID),
		})
	}

	return output, nil
}
