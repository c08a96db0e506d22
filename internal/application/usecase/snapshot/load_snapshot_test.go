package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

type stubExpenseRepo struct {
	expenses []entity.Expense
	err      error
	calls    int
	mu       sync.Mutex
}

func (s *stubExpenseRepo) List(ctx context.Context, session entity.Session) ([]entity.Expense, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.expenses, s.err
}

func (s *stubExpenseRepo) Create(ctx context.Context, session entity.Session, draft entity.ExpenseDraft) (*entity.Expense, error) {
	return nil, errors.New("not implemented")
}

func (s *stubExpenseRepo) Update(ctx context.Context, session entity.Session, id string, draft entity.ExpenseDraft) (*entity.Expense, error) {
	return nil, errors.New("not implemented")
}

func (s *stubExpenseRepo) Delete(ctx context.Context, session entity.Session, id string) error {
	return errors.New("not implemented")
}

type stubCategoryRepo struct {
	categories []entity.Category
	err        error
}

func (s *stubCategoryRepo) List(ctx context.Context, session entity.Session) ([]entity.Category, error) {
	return s.categories, s.err
}

type stubBudgetRepo struct {
	budgets []entity.Budget
	err     error
}

func (s *stubBudgetRepo) List(ctx context.Context, session entity.Session) ([]entity.Budget, error) {
	return s.budgets, s.err
}

func (s *stubBudgetRepo) Create(ctx context.Context, session entity.Session, draft entity.BudgetDraft) (*entity.Budget, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBudgetRepo) Update(ctx context.Context, session entity.Session, id string, draft entity.BudgetDraft) (*entity.Budget, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBudgetRepo) Delete(ctx context.Context, session entity.Session, id string) error {
	return errors.New("not implemented")
}

type memoryCache struct {
	items    map[string]*entity.Snapshot
	failGets bool
}

func (m *memoryCache) Get(ctx context.Context, userID string) (*entity.Snapshot, error) {
	if m.failGets {
		return nil, errors.New("connection refused")
	}
	return m.items[userID], nil
}

func (m *memoryCache) Set(ctx context.Context, userID string, snapshot *entity.Snapshot) error {
	m.items[userID] = snapshot
	return nil
}

func (m *memoryCache) Invalidate(ctx context.Context, userID string) error {
	delete(m.items, userID)
	return nil
}

func TestLoadSnapshotUseCase(t *testing.T) {
	session := entity.Session{UserID: "42", AccessToken: "token"}
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	newRepos := func() (*stubExpenseRepo, *stubCategoryRepo, *stubBudgetRepo) {
		return &stubExpenseRepo{expenses: []entity.Expense{{ID: "1", Amount: decimal.NewFromInt(5)}}},
			&stubCategoryRepo{categories: []entity.Category{{ID: "food", Name: "Food"}}},
			&stubBudgetRepo{budgets: []entity.Budget{{ID: "b", Amount: decimal.NewFromInt(10), Month: "2024-03"}}}
	}

	t.Run("loads all collections", func(t *testing.T) {
		expenses, categories, budgets := newRepos()
		uc := NewLoadSnapshotUseCase(expenses, categories, budgets, nil).WithClock(func() time.Time { return fixed })

		got, err := uc.Execute(context.Background(), session)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Expenses) != 1 || len(got.Categories) != 1 || len(got.Budgets) != 1 {
			t.Errorf("expected one of each collection, got %+v", got)
		}
		if !got.FetchedAt.Equal(fixed) {
			t.Errorf("expected fetched at %v, got %v", fixed, got.FetchedAt)
		}
	})

	t.Run("fails as a whole when one collection fails", func(t *testing.T) {
		expenses, categories, budgets := newRepos()
		budgets.err = errors.New("boom")
		uc := NewLoadSnapshotUseCase(expenses, categories, budgets, nil)

		got, err := uc.Execute(context.Background(), session)
		if err == nil {
			t.Fatal("expected an error")
		}
		if got != nil {
			t.Error("expected no partial snapshot")
		}
	})

	t.Run("serves repeated loads from cache until invalidated", func(t *testing.T) {
		expenses, categories, budgets := newRepos()
		cache := &memoryCache{items: map[string]*entity.Snapshot{}}
		uc := NewLoadSnapshotUseCase(expenses, categories, budgets, cache)

		for i := 0; i < 3; i++ {
			if _, err := uc.Execute(context.Background(), session); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if expenses.calls != 1 {
			t.Errorf("expected 1 fetch, got %d", expenses.calls)
		}

		uc.Invalidate(context.Background(), session.UserID)
		if _, err := uc.Execute(context.Background(), session); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expenses.calls != 2 {
			t.Errorf("expected 2 fetches after invalidation, got %d", expenses.calls)
		}
	})

	t.Run("cache failure degrades to direct fetch", func(t *testing.T) {
		expenses, categories, budgets := newRepos()
		cache := &memoryCache{items: map[string]*entity.Snapshot{}, failGets: true}
		uc := NewLoadSnapshotUseCase(expenses, categories, budgets, cache)

		got, err := uc.Execute(context.Background(), session)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Expenses) != 1 {
			t.Errorf("expected 1 expense, got %d", len(got.Expenses))
		}
	})
}
