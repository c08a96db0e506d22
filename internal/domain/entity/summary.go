// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// NoneCategory is reported as the top category when there is nothing to rank.
const NoneCategory = "None"

// CategorySummary aggregates the expenses of one category.
type CategorySummary struct {
	CategoryID string
	Amount     decimal.Decimal
	Count      int
	Percentage decimal.Decimal // Share of the grand total, 0..100
}

// MonthlySummary aggregates the expenses of one calendar month.
type MonthlySummary struct {
	Month MonthKey
	Label string
	Total decimal.Decimal
	Count int
}

// TopCategory is the category with the largest total.
type TopCategory struct {
	CategoryID string
	Amount     decimal.Decimal
}

// IsNone reports whether no category could be ranked.
func (t TopCategory) IsNone() bool {
	return t.CategoryID == NoneCategory
}
