// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/analytics"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// BudgetOutput is a budget status with display attributes resolved.
type BudgetOutput struct {
	entity.BudgetStatus
	CategoryName string
	MonthLabel   string
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets        []BudgetOutput
	InvalidBudgets []string
	AlertsQueued   int
}

// ListBudgetsUseCase evaluates every budget of the caller against their expenses.
type ListBudgetsUseCase struct {
	snapshots adapter.SnapshotLoader
	notifier  *AlertNotifier // Optional
	now       func() time.Time
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
// notifier may be nil when budget alerts are disabled.
func NewListBudgetsUseCase(snapshots adapter.SnapshotLoader, notifier *AlertNotifier) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		snapshots: snapshots,
		notifier:  notifier,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to find the current month.
func (uc *ListBudgetsUseCase) WithClock(now func() time.Time) *ListBudgetsUseCase {
	uc.now = now
	return uc
}

// Execute returns the status of every budget, in data source order.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, session entity.Session) (*ListBudgetsOutput, error) {
	snapshot, err := uc.snapshots.Execute(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	evaluation := analytics.EvaluateBudgets(snapshot.Budgets, snapshot.Expenses)
	if len(evaluation.Invalid) > 0 {
		slog.Warn("Skipped budgets with non-positive amounts",
			"user_id", session.UserID,
			"budget_ids", evaluation.Invalid,
		)
	}

	index := entity.NewCategoryIndex(snapshot.Categories)
	output := &ListBudgetsOutput{
		Budgets:        make([]BudgetOutput, 0, len(evaluation.Statuses)),
		InvalidBudgets: evaluation.Invalid,
	}

	current := entity.MonthKeyOf(uc.now())
	var currentStatuses []entity.BudgetStatus

	for _, s := range evaluation.Statuses {
		output.Budgets = append(output.Budgets, BudgetOutput{
			BudgetStatus: s,
			CategoryName: categoryName(s.Budget, index),
			MonthLabel:   s.Budget.Month.LongLabel(),
		})
		if s.Budget.Month == current {
			currentStatuses = append(currentStatuses, s)
		}
	}

	if uc.notifier != nil {
		output.AlertsQueued = uc.notifier.Notify(ctx, session, currentStatuses, index)
	}

	return output, nil
}
