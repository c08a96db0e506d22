// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// BudgetStatusTier classifies how much of a budget has been used.
type BudgetStatusTier string

const (
	BudgetStatusGood    BudgetStatusTier = "good"
	BudgetStatusWarning BudgetStatusTier = "warning"
	BudgetStatusDanger  BudgetStatusTier = "danger"
)

// Budget represents a monthly spending limit, optionally scoped to one category.
type Budget struct {
	ID         string
	Amount     decimal.Decimal
	Month      MonthKey
	CategoryID *string // nil means the budget covers all categories
	UserID     string
}

// CoversAllCategories reports whether the budget has no category restriction.
func (b Budget) CoversAllCategories() bool {
	return b.CategoryID == nil || *b.CategoryID == ""
}

// BudgetDraft carries the user-editable fields of a budget.
type BudgetDraft struct {
	Amount     decimal.Decimal
	Month      MonthKey
	CategoryID *string
}

// BudgetStatus is the evaluation of a budget against the expenses of its month.
type BudgetStatus struct {
	Budget       Budget
	Spent        decimal.Decimal
	Percentage   decimal.Decimal
	Status       BudgetStatusTier
	Remaining    decimal.Decimal
	Overage      decimal.Decimal // Positive only when spending exceeds the amount
	MatchedCount int
}

// IsOverBudget reports whether spending exceeded the budget amount.
func (s BudgetStatus) IsOverBudget() bool {
	return s.Overage.IsPositive()
}
