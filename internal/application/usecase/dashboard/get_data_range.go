// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/analytics"
)

// GetDataRangeOutput represents the output of getting data range.
type GetDataRangeOutput struct {
	OldestDate    *time.Time
	NewestDate    *time.Time
	TotalExpenses int
	HasData       bool
}

// GetDataRangeUseCase handles getting the date range of user's expenses.
type GetDataRangeUseCase struct {
	snapshots adapter.SnapshotLoader
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(snapshots adapter.SnapshotLoader) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{
		snapshots: snapshots,
	}
}

// Execute retrieves the date range of user's expenses, ignoring any filter.
func (uc *GetDataRangeUseCase) Execute(ctx context.Context, input DashboardInput) (*GetDataRangeOutput, error) {
	input.Filter = analytics.FilterSpec{}
	data, err := loadFiltered(ctx, uc.snapshots, input)
	if err != nil {
		return nil, err
	}

	output := &GetDataRangeOutput{TotalExpenses: len(data.expenses)}
	if len(data.expenses) == 0 {
		return output, nil
	}

	ordered := analytics.NewestFirst(data.expenses)
	newest := ordered[0].Date
	oldest := ordered[len(ordered)-1].Date

	output.NewestDate = &newest
	output.OldestDate = &oldest
	output.HasData = true

	return output, nil
}
