// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// ExpenseModel represents the expenses table owned by the expense service.
type ExpenseModel struct {
	ID          string          `gorm:"primaryKey"`
	UserID      string          `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	CategoryID  string          `gorm:"not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	Note        sql.NullString  `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() entity.Expense {
	y, mo, d := m.Date.Date()
	return entity.Expense{
		ID:          m.ID,
		Amount:      m.Amount,
		Description: m.Description,
		CategoryID:  m.CategoryID,
		Date:        time.Date(y, mo, d, 0, 0, 0, 0, time.UTC),
		CreatedAt:   m.CreatedAt.UTC(),
		Note:        m.Note.String,
	}
}
