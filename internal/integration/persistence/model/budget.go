// Package model defines database models for persistence layer.
package model

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// BudgetModel represents the budgets table owned by the expense service.
type BudgetModel struct {
	ID         string          `gorm:"primaryKey"`
	UserID     string          `gorm:"not null;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Month      string          `gorm:"type:varchar(7);not null"`
	CategoryID sql.NullString
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
// It fails when the stored month is not a valid YYYY-MM key.
func (m *BudgetModel) ToEntity() (entity.Budget, error) {
	month, err := entity.ParseMonthKey(m.Month)
	if err != nil {
		return entity.Budget{}, err
	}

	budget := entity.Budget{
		ID:     m.ID,
		Amount: m.Amount,
		Month:  month,
		UserID: m.UserID,
	}
	if m.CategoryID.Valid && m.CategoryID.String != "" {
		id := m.CategoryID.String
		budget.CategoryID = &id
	}
	return budget, nil
}
