// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single spending event recorded by a user.
type Expense struct {
	ID          string
	Amount      decimal.Decimal // Non-negative, single currency
	Description string
	CategoryID  string
	Date        time.Time // Calendar date the expense occurred, UTC midnight
	CreatedAt   time.Time
	Note        string // Optional, empty when absent
}

// Month returns the year-month bucket the expense belongs to.
func (e Expense) Month() MonthKey {
	return MonthKeyOf(e.Date)
}

// ExpenseDraft carries the user-editable fields of an expense before the
// remote service assigns identity and creation time.
type ExpenseDraft struct {
	Amount      decimal.Decimal
	Description string
	CategoryID  string
	Date        time.Time
	Note        string
}

// Snapshot is a complete, consistent view of a user's collections at fetch time.
type Snapshot struct {
	Expenses   []Expense
	Categories []Category
	Budgets    []Budget
	FetchedAt  time.Time
}
