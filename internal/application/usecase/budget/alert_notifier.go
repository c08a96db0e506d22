// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// AlertNotifier queues one alert email per exceeded budget and month.
type AlertNotifier struct {
	alerts    adapter.AlertService
	ledger    adapter.AlertLedger
	formatter adapter.MoneyFormatter
}

// NewAlertNotifier creates a new AlertNotifier instance.
func NewAlertNotifier(alerts adapter.AlertService, ledger adapter.AlertLedger, formatter adapter.MoneyFormatter) *AlertNotifier {
	return &AlertNotifier{
		alerts:    alerts,
		ledger:    ledger,
		formatter: formatter,
	}
}

// AlertKey identifies the alert of a budget within its month.
func AlertKey(userID string, b entity.Budget) string {
	return fmt.Sprintf("budget-alert:%s:%s:%s", userID, b.ID, b.Month)
}

// Notify queues alerts for statuses in the danger tier that were not alerted yet.
// Failures are logged and never returned, so listing budgets keeps working.
// It returns the number of alerts queued.
func (n *AlertNotifier) Notify(ctx context.Context, session entity.Session, statuses []entity.BudgetStatus, index *entity.CategoryIndex) int {
	if session.Email == "" {
		return 0
	}

	queued := 0
	for _, s := range statuses {
		if s.Status != entity.BudgetStatusDanger {
			continue
		}

		key := AlertKey(session.UserID, s.Budget)
		first, err := n.ledger.Claim(ctx, key)
		if err != nil {
			slog.Warn("Failed to claim budget alert", "key", key, "error", err)
			continue
		}
		if !first {
			continue
		}

		input := adapter.QueueBudgetAlertInput{
			AlertKey:     key,
			UserEmail:    session.Email,
			UserName:     session.Email,
			BudgetID:     s.Budget.ID,
			CategoryName: categoryName(s.Budget, index),
			MonthLabel:   s.Budget.Month.LongLabel(),
			Amount:       n.formatter.Money(s.Budget.Amount),
			Spent:        n.formatter.Money(s.Spent),
			Percentage:   n.formatter.Percent(s.Percentage),
			Overage:      n.formatter.Money(s.Overage),
		}
		err = n.alerts.QueueBudgetAlert(ctx, input)
		if errors.Is(err, domainerror.ErrBudgetAlertQueued) {
			// Another replica claimed the alert through the queue table.
			continue
		}
		if err != nil {
			slog.Error("Failed to queue budget alert",
				"budget_id", s.Budget.ID,
				"user_id", session.UserID,
				"error", err,
			)
			continue
		}
		queued++
	}

	return queued
}
