package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

type fakeSnapshots struct {
	snapshot    *entity.Snapshot
	invalidated int
}

func (f *fakeSnapshots) Execute(ctx context.Context, session entity.Session) (*entity.Snapshot, error) {
	return f.snapshot, nil
}

func (f *fakeSnapshots) Invalidate(ctx context.Context, userID string) {
	f.invalidated++
}

type fakeBudgetRepo struct {
	draft *entity.BudgetDraft
	err   error
}

func (f *fakeBudgetRepo) List(ctx context.Context, session entity.Session) ([]entity.Budget, error) {
	return nil, nil
}

func (f *fakeBudgetRepo) Create(ctx context.Context, session entity.Session, draft entity.BudgetDraft) (*entity.Budget, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.draft = &draft
	return &entity.Budget{ID: "b-new", Amount: draft.Amount, Month: draft.Month, CategoryID: draft.CategoryID}, nil
}

func (f *fakeBudgetRepo) Update(ctx context.Context, session entity.Session, id string, draft entity.BudgetDraft) (*entity.Budget, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.draft = &draft
	return &entity.Budget{ID: id, Amount: draft.Amount, Month: draft.Month}, nil
}

func (f *fakeBudgetRepo) Delete(ctx context.Context, session entity.Session, id string) error {
	return f.err
}

type recordingAlerts struct {
	inputs []adapter.QueueBudgetAlertInput
}

func (r *recordingAlerts) QueueBudgetAlert(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	r.inputs = append(r.inputs, input)
	return nil
}

type memoryLedger struct {
	claimed map[string]bool
}

func (m *memoryLedger) Claim(ctx context.Context, key string) (bool, error) {
	if m.claimed[key] {
		return false, nil
	}
	m.claimed[key] = true
	return true, nil
}

type plainFormatter struct{}

func (plainFormatter) Money(d decimal.Decimal) string   { return d.StringFixed(2) }
func (plainFormatter) Percent(d decimal.Decimal) string { return d.StringFixed(1) + "%" }

var session = entity.Session{UserID: "u1", Email: "ann@example.com"}

func strPtr(s string) *string { return &s }

func TestBudgetInput_Validation(t *testing.T) {
	t.Run("amount must be positive", func(t *testing.T) {
		_, err := BudgetInput{Amount: decimal.Zero, Month: "2024-03"}.toDraft()
		if !errors.Is(err, domainerror.ErrInvalidBudgetAmount) {
			t.Fatalf("expected ErrInvalidBudgetAmount, got %v", err)
		}
		if got, want := err.Error(), "budget amount must be greater than zero: invalid budget amount"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("month must be YYYY-MM", func(t *testing.T) {
		for _, month := range []string{"", "2024-3-01", "March", "2024-13"} {
			_, err := BudgetInput{Amount: decimal.NewFromInt(1), Month: month}.toDraft()
			if !errors.Is(err, domainerror.ErrInvalidBudgetMonth) {
				t.Errorf("month %q: expected ErrInvalidBudgetMonth, got %v", month, err)
			}
		}
	})

	t.Run("all and blank category mean no restriction", func(t *testing.T) {
		for _, id := range []*string{nil, strPtr(""), strPtr("all")} {
			draft, err := BudgetInput{Amount: decimal.NewFromInt(1), Month: "2024-03", CategoryID: id}.toDraft()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if draft.CategoryID != nil {
				t.Errorf("expected nil category, got %q", *draft.CategoryID)
			}
		}
	})
}

func TestCreateUpdateDeleteBudget(t *testing.T) {
	repo := &fakeBudgetRepo{}
	snapshots := &fakeSnapshots{}

	created, err := NewCreateBudgetUseCase(repo, snapshots).Execute(context.Background(), CreateBudgetInput{
		Session:     session,
		BudgetInput: BudgetInput{Amount: decimal.NewFromInt(300), Month: "2024-03", CategoryID: strPtr("food")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CategoryID == nil || *created.CategoryID != "food" {
		t.Error("expected food category")
	}

	if _, err := NewUpdateBudgetUseCase(repo, snapshots).Execute(context.Background(), UpdateBudgetInput{
		Session:     session,
		ID:          "b1",
		BudgetInput: BudgetInput{Amount: decimal.NewFromInt(350), Month: "2024-03"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := NewDeleteBudgetUseCase(repo, snapshots).Execute(context.Background(), session, "b1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshots.invalidated != 3 {
		t.Errorf("expected 3 invalidations, got %d", snapshots.invalidated)
	}

	repo.err = domainerror.NewRemoteError(domainerror.ErrCodeRemoteNotFound, 404, "missing", domainerror.ErrRemoteNotFound)
	if err := NewDeleteBudgetUseCase(repo, snapshots).Execute(context.Background(), session, "zz"); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound, got %v", err)
	}
}

func TestListBudgetsUseCase(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	snapshot := &entity.Snapshot{
		Expenses: []entity.Expense{
			{ID: "1", Amount: decimal.NewFromInt(50), CategoryID: "food", Date: day("2024-03-01")},
			{ID: "2", Amount: decimal.NewFromInt(150), CategoryID: "transport", Date: day("2024-03-15")},
			{ID: "3", Amount: decimal.NewFromInt(500), CategoryID: "food", Date: day("2024-02-15")},
		},
		Budgets: []entity.Budget{
			{ID: "all", Amount: decimal.NewFromInt(100), Month: "2024-03"},
			{ID: "food", Amount: decimal.NewFromInt(100), Month: "2024-03", CategoryID: strPtr("food")},
			{ID: "feb", Amount: decimal.NewFromInt(100), Month: "2024-02"},
			{ID: "broken", Amount: decimal.Zero, Month: "2024-03"},
		},
	}

	alerts := &recordingAlerts{}
	ledger := &memoryLedger{claimed: map[string]bool{}}
	uc := NewListBudgetsUseCase(&fakeSnapshots{snapshot: snapshot}, NewAlertNotifier(alerts, ledger, plainFormatter{}))
	uc.now = func() time.Time { return day("2024-03-20") }

	out, err := uc.Execute(context.Background(), session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Budgets) != 3 {
		t.Fatalf("expected 3 evaluated budgets, got %d", len(out.Budgets))
	}
	if len(out.InvalidBudgets) != 1 || out.InvalidBudgets[0] != "broken" {
		t.Errorf("expected broken budget reported, got %v", out.InvalidBudgets)
	}

	overall := out.Budgets[0]
	if overall.CategoryName != OverallBudgetName {
		t.Errorf("expected %s, got %s", OverallBudgetName, overall.CategoryName)
	}
	if overall.Status != entity.BudgetStatusDanger || !overall.Overage.Equal(decimal.NewFromInt(100)) {
		t.Errorf("unexpected overall status %+v", overall.BudgetStatus)
	}
	if out.Budgets[1].CategoryName != "Food & Dining" {
		t.Errorf("expected default food name, got %s", out.Budgets[1].CategoryName)
	}
	if out.Budgets[1].Status != entity.BudgetStatusGood {
		t.Errorf("expected food budget good at 50%%, got %s", out.Budgets[1].Status)
	}

	// February is in danger too but is not the current month.
	if out.AlertsQueued != 1 || len(alerts.inputs) != 1 {
		t.Fatalf("expected one alert, got %d", len(alerts.inputs))
	}
	if alerts.inputs[0].Percentage != "200.0%" || alerts.inputs[0].MonthLabel != "March 2024" {
		t.Errorf("unexpected alert %+v", alerts.inputs[0])
	}

	again, err := uc.Execute(context.Background(), session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.AlertsQueued != 0 {
		t.Errorf("expected alert to be sent once, got %d more", again.AlertsQueued)
	}
}

type queuedAlerts struct {
	keys map[string]bool
}

func (q *queuedAlerts) QueueBudgetAlert(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	if q.keys[input.AlertKey] {
		return domainerror.NewEmailError(domainerror.ErrCodeBudgetAlertQueued, "budget alert already queued", domainerror.ErrBudgetAlertQueued)
	}
	q.keys[input.AlertKey] = true
	return nil
}

func TestAlertNotifier_QueueDedupe(t *testing.T) {
	budget := entity.Budget{ID: "b1", Amount: decimal.NewFromInt(100), Month: "2024-03"}
	statuses := []entity.BudgetStatus{{Budget: budget, Spent: decimal.NewFromInt(150), Status: entity.BudgetStatusDanger}}
	queue := &queuedAlerts{keys: map[string]bool{}}

	// Separate ledgers stand in for two replicas sharing one queue table.
	first := NewAlertNotifier(queue, &memoryLedger{claimed: map[string]bool{}}, plainFormatter{})
	second := NewAlertNotifier(queue, &memoryLedger{claimed: map[string]bool{}}, plainFormatter{})

	if n := first.Notify(context.Background(), session, statuses, nil); n != 1 {
		t.Fatalf("expected first replica to queue the alert, got %d", n)
	}
	if n := second.Notify(context.Background(), session, statuses, nil); n != 0 {
		t.Errorf("expected duplicate alert to be skipped, got %d", n)
	}
	if !queue.keys[AlertKey(session.UserID, budget)] {
		t.Errorf("expected alert keyed by %s", AlertKey(session.UserID, budget))
	}
}
