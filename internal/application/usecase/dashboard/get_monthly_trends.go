// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/analytics"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// GetMonthlyTrendsOutput represents the monthly totals, oldest month first.
type GetMonthlyTrendsOutput struct {
	Months []entity.MonthlySummary
}

// GetMonthlyTrendsUseCase handles getting spending totals per month.
type GetMonthlyTrendsUseCase struct {
	snapshots adapter.SnapshotLoader
}

// NewGetMonthlyTrendsUseCase creates a new GetMonthlyTrendsUseCase instance.
func NewGetMonthlyTrendsUseCase(snapshots adapter.SnapshotLoader) *GetMonthlyTrendsUseCase {
	return &GetMonthlyTrendsUseCase{snapshots: snapshots}
}

// Execute groups the filtered expenses by month.
func (uc *GetMonthlyTrendsUseCase) Execute(ctx context.Context, input DashboardInput) (*GetMonthlyTrendsOutput, error) {
	data, err := loadFiltered(ctx, uc.snapshots, input)
	if err != nil {
		return nil, err
	}

	return &GetMonthlyTrendsOutput{
		Months: analytics.MonthlySummary(data.expenses),
	}, nil
}
