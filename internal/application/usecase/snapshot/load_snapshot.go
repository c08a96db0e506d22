// Package snapshot contains the use case that gathers a user's collections.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// LoadSnapshotUseCase fetches expenses, categories and budgets as one
// consistent snapshot, serving from the cache when possible.
type LoadSnapshotUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	budgetRepo   adapter.BudgetRepository
	cache        adapter.SnapshotCache // Optional
	now          func() time.Time
}

// NewLoadSnapshotUseCase creates a new LoadSnapshotUseCase instance.
// cache may be nil to always fetch from the data source.
func NewLoadSnapshotUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.SnapshotCache,
) *LoadSnapshotUseCase {
	return &LoadSnapshotUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
		cache:        cache,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to stamp fetched snapshots.
func (uc *LoadSnapshotUseCase) WithClock(now func() time.Time) *LoadSnapshotUseCase {
	uc.now = now
	return uc
}

// Execute returns the snapshot for the session owner.
// Either all three collections load or an error is returned.
func (uc *LoadSnapshotUseCase) Execute(ctx context.Context, session entity.Session) (*entity.Snapshot, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, session.UserID)
		if err != nil {
			slog.Warn("Snapshot cache read failed, fetching from data source",
				"user_id", session.UserID,
				"error", err,
			)
		} else if cached != nil {
			return cached, nil
		}
	}

	snapshot, err := uc.fetch(ctx, session)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, session.UserID, snapshot); err != nil {
			slog.Warn("Snapshot cache write failed",
				"user_id", session.UserID,
				"error", err,
			)
		}
	}

	return snapshot, nil
}

// Invalidate drops the cached snapshot of userID after a write.
func (uc *LoadSnapshotUseCase) Invalidate(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Snapshot cache invalidation failed",
			"user_id", userID,
			"error", err,
		)
	}
}

func (uc *LoadSnapshotUseCase) fetch(ctx context.Context, session entity.Session) (*entity.Snapshot, error) {
	var (
		expenses   []entity.Expense
		categories []entity.Category
		budgets    []entity.Budget
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		expenses, err = uc.expenseRepo.List(gctx, session)
		if err != nil {
			return fmt.Errorf("failed to list expenses: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		categories, err = uc.categoryRepo.List(gctx, session)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		budgets, err = uc.budgetRepo.List(gctx, session)
		if err != nil {
			return fmt.Errorf("failed to list budgets: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.Snapshot{
		Expenses:   expenses,
		Categories: categories,
		Budgets:    budgets,
		FetchedAt:  uc.now().UTC(),
	}, nil
}
