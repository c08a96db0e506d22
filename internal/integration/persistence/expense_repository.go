// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	"github.com/expense-tracker/gateway/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface read-only.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new read-only expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// List retrieves all expenses of the session owner in insertion order.
func (r *expenseRepository) List(ctx context.Context, session entity.Session) ([]entity.Expense, error) {
	var models []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", session.UserID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]entity.Expense, 0, len(models))
	for _, m := range models {
		if m.Amount.IsNegative() || strings.TrimSpace(m.Description) == "" {
			slog.Warn("Dropped invalid expense row", "id", m.ID, "user_id", session.UserID)
			continue
		}
		expenses = append(expenses, m.ToEntity())
	}
	return expenses, nil
}

// Create is not supported on the database data source.
func (r *expenseRepository) Create(ctx context.Context, session entity.Session, draft entity.ExpenseDraft) (*entity.Expense, error) {
	return nil, errReadOnly("creating expenses")
}

// Update is not supported on the database data source.
func (r *expenseRepository) Update(ctx context.Context, session entity.Session, id string, draft entity.ExpenseDraft) (*entity.Expense, error) {
	return nil, errReadOnly("updating expenses")
}

// Delete is not supported on the database data source.
func (r *expenseRepository) Delete(ctx context.Context, session entity.Session, id string) error {
	return errReadOnly("deleting expenses")
}
