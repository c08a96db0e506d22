// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	"github.com/expense-tracker/gateway/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// List retrieves the shared categories plus those of the session owner.
func (r *categoryRepository) List(ctx context.Context, session entity.Session) ([]entity.Category, error) {
	var models []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id IS NULL OR user_id = ?", session.UserID).
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]entity.Category, len(models))
	for i, m := range models {
		categories[i] = m.ToEntity()
	}
	return categories, nil
}
