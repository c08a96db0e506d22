// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	"github.com/expense-tracker/gateway/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface read-only.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new read-only budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// List retrieves all budgets of the session owner, newest month first.
func (r *budgetRepository) List(ctx context.Context, session entity.Session) ([]entity.Budget, error) {
	var models []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", session.UserID).
		Order("month DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]entity.Budget, 0, len(models))
	for _, m := range models {
		budget, err := m.ToEntity()
		if err != nil {
			slog.Warn("Dropped budget row with invalid month", "id", m.ID, "month", m.Month)
			continue
		}
		budgets = append(budgets, budget)
	}
	return budgets, nil
}

// Create is not supported on the database data source.
func (r *budgetRepository) Create(ctx context.Context, session entity.Session, draft entity.BudgetDraft) (*entity.Budget, error) {
	return nil, errReadOnly("creating budgets")
}

// Update is not supported on the database data source.
func (r *budgetRepository) Update(ctx context.Context, session entity.Session, id string, draft entity.BudgetDraft) (*entity.Budget, error) {
	return nil, errReadOnly("updating budgets")
}

// Delete is not supported on the database data source.
func (r *budgetRepository) Delete(ctx context.Context, session entity.Session, id string) error {
	return errReadOnly("deleting budgets")
}
