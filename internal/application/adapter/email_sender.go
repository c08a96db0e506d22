// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// AlertService defines the interface for queueing budget alerts.
type AlertService interface {
	// QueueBudgetAlert queues an alert email for an exceeded budget.
	QueueBudgetAlert(ctx context.Context, input QueueBudgetAlertInput) error
}

// QueueBudgetAlertInput represents the input for queueing a budget alert email.
type QueueBudgetAlertInput struct {
	AlertKey     string // One alert per key, see budget.AlertKey
	UserEmail    string
	UserName     string
	BudgetID     string
	CategoryName string
	MonthLabel   string
	Amount       string
	Spent        string
	Percentage   string
	Overage      string
}
