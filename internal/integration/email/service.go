// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueBudgetAlert queues a budget alert email.
func (s *Service) QueueBudgetAlert(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	subject := fmt.Sprintf("Budget alert: %s, %s", input.CategoryName, input.MonthLabel)

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"budget_id":     input.BudgetID,
		"category_name": input.CategoryName,
		"month_label":   input.MonthLabel,
		"amount":        input.Amount,
		"spent":         input.Spent,
		"percentage":    input.Percentage,
		"overage":       input.Overage,
		"budgets_url":   s.appBaseURL + "/budgets",
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetAlert,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)
	job.DedupeKey = input.AlertKey

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue budget alert email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.AlertService.
var _ adapter.AlertService = (*Service)(nil)
