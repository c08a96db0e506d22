package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
	"github.com/expense-tracker/gateway/internal/integration/email/templates"
)

func alertInput() adapter.QueueBudgetAlertInput {
	return adapter.QueueBudgetAlertInput{
		UserEmail:    "ana@example.com",
		UserName:     "Ana",
		BudgetID:     "b1",
		CategoryName: "Food & Dining",
		MonthLabel:   "March 2024",
		Amount:       "$300.00",
		Spent:        "$320.00",
		Percentage:   "106.7%",
		Overage:      "$20.00",
	}
}

func newTestWorker(t *testing.T, queue adapter.EmailQueueRepository, sender adapter.EmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestService_QueueBudgetAlert(t *testing.T) {
	ctx := context.Background()
	queue := NewMemoryQueue(10)
	service := NewService(queue, "https://app.example.com")

	if err := service.QueueBudgetAlert(ctx, alertInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	jobs, _ := queue.GetPendingJobs(ctx, 10)
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	job := jobs[0]
	if job.TemplateType != entity.TemplateBudgetAlert {
		t.Errorf("unexpected template %s", job.TemplateType)
	}
	if !strings.Contains(job.Subject, "Food & Dining") {
		t.Errorf("expected category in subject, got %q", job.Subject)
	}
	if job.TemplateData["budgets_url"] != "https://app.example.com/budgets" {
		t.Errorf("unexpected budgets url %v", job.TemplateData["budgets_url"])
	}
}

func TestMemoryQueue_Full(t *testing.T) {
	ctx := context.Background()
	queue := NewMemoryQueue(1)
	service := NewService(queue, "")

	if err := service.QueueBudgetAlert(ctx, alertInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := service.QueueBudgetAlert(ctx, alertInput())
	if !errors.Is(err, domainerror.ErrEmailQueueFull) {
		t.Errorf("expected ErrEmailQueueFull, got %v", err)
	}
}

func TestMemoryQueue_AlertKey(t *testing.T) {
	ctx := context.Background()
	queue := NewMemoryQueue(10)
	service := NewService(queue, "")

	input := alertInput()
	input.AlertKey = "budget-alert:u1:b1:2024-03"
	if err := service.QueueBudgetAlert(ctx, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := service.QueueBudgetAlert(ctx, input)
	if !errors.Is(err, domainerror.ErrBudgetAlertQueued) {
		t.Errorf("expected ErrBudgetAlertQueued, got %v", err)
	}

	input.AlertKey = "budget-alert:u1:b1:2024-04"
	if err := service.QueueBudgetAlert(ctx, input); err != nil {
		t.Fatalf("expected the next month to queue, got %v", err)
	}
	if queue.Len() != 2 {
		t.Errorf("expected 2 jobs, got %d", queue.Len())
	}
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("sends rendered alert", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		sender := NewMockEmailSender()
		_ = NewService(queue, "https://app.example.com").QueueBudgetAlert(ctx, alertInput())

		newTestWorker(t, queue, sender).ProcessNow(ctx)

		sent := sender.Sent()
		if len(sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sent))
		}
		if !strings.Contains(sent[0].HTML, "$20.00") {
			t.Error("expected overage in html body")
		}
		if !strings.Contains(sent[0].Text, "Over budget by: $20.00") {
			t.Errorf("expected overage line in text body, got %q", sent[0].Text)
		}
		if pending, _ := queue.GetPendingJobs(ctx, 10); len(pending) != 0 {
			t.Error("expected no pending jobs after send")
		}
	})

	t.Run("temporary failure keeps job pending", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("503"), false)
		_ = NewService(queue, "").QueueBudgetAlert(ctx, alertInput())

		newTestWorker(t, queue, sender).ProcessNow(ctx)

		pending, _ := queue.GetPendingJobs(ctx, 10)
		if len(pending) != 1 || pending[0].Attempts != 1 {
			t.Fatalf("expected job to be retried, got %+v", pending)
		}
	})

	t.Run("permanent failure fails job", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("422"), true)
		_ = NewService(queue, "").QueueBudgetAlert(ctx, alertInput())

		newTestWorker(t, queue, sender).ProcessNow(ctx)

		if pending, _ := queue.GetPendingJobs(ctx, 10); len(pending) != 0 {
			t.Error("expected job to leave the pending state")
		}
		deleted, _ := queue.DeleteOldJobs(ctx, -time.Minute)
		if deleted != 1 {
			t.Errorf("expected failed job to be cleaned up, got %d", deleted)
		}
	})
}

func TestRenderer_NearLimitAlert(t *testing.T) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	html, text, err := renderer.Render(string(entity.TemplateBudgetAlert), templates.BudgetAlertData{
		CategoryName: "Overall Budget",
		MonthLabel:   "March 2024",
		Amount:       "$1,000.00",
		Spent:        "$950.00",
		Percentage:   "95.0%",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "almost used up") {
		t.Error("expected near-limit wording in html")
	}
	if strings.Contains(text, "Over budget by") {
		t.Error("did not expect overage line")
	}
	if !strings.Contains(text, "Hi there") {
		t.Error("expected generic greeting without a name")
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("422 validation_error"), true},
		{errors.New("401 unauthorized"), true},
		{errors.New("429 rate limit"), false},
		{errors.New("500 internal"), false},
	}

	for _, tt := range tests {
		if got := isPermanentError(tt.err); got != tt.want {
			t.Errorf("isPermanentError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
