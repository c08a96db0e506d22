// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/analytics"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// DashboardInput is shared by every dashboard view.
type DashboardInput struct {
	Session entity.Session
	Filter  analytics.FilterSpec
}

// filtered is a snapshot narrowed by the dashboard filter.
type filtered struct {
	snapshot *entity.Snapshot
	expenses []entity.Expense
	index    *entity.CategoryIndex
}

func loadFiltered(ctx context.Context, snapshots adapter.SnapshotLoader, input DashboardInput) (*filtered, error) {
	if err := input.Filter.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := snapshots.Execute(ctx, input.Session)
	if err != nil {
		// Auth failures keep their own meaning; anything else means no data.
		if errors.Is(err, domainerror.ErrRemoteUnauthorized) {
			return nil, err
		}
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeSnapshotUnavailable,
			"expense data is unavailable",
			fmt.Errorf("%w: %w", domainerror.ErrSnapshotUnavailable, err),
		)
	}

	return &filtered{
		snapshot: snapshot,
		expenses: analytics.Filter(snapshot.Expenses, input.Filter),
		index:    entity.NewCategoryIndex(snapshot.Categories),
	}, nil
}
