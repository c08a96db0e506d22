package analytics

import (
	"sort"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// NewestFirst returns a copy of expenses ordered by date, then creation time,
// most recent first.
func NewestFirst(expenses []entity.Expense) []entity.Expense {
	out := make([]entity.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Recent returns at most n of the most recent expenses.
func Recent(expenses []entity.Expense, n int) []entity.Expense {
	sorted := NewestFirst(expenses)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
