// Package model defines database models for persistence layer.
package model

import (
	"database/sql"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// CategoryModel represents the categories table. Rows without a user are
// shared by everyone.
type CategoryModel struct {
	ID     string         `gorm:"primaryKey"`
	UserID sql.NullString `gorm:"index"`
	Name   string         `gorm:"type:varchar(50);not null"`
	Icon   string         `gorm:"type:varchar(50)"`
	Color  string         `gorm:"type:varchar(7)"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() entity.Category {
	return entity.Category{
		ID:    m.ID,
		Name:  m.Name,
		Icon:  m.Icon,
		Color: m.Color,
	}
}
