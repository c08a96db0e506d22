package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", s, err)
	}
	return d
}

func newExpense(t *testing.T, id, amount, categoryID, date string) entity.Expense {
	t.Helper()
	return entity.Expense{
		ID:          id,
		Amount:      decimal.RequireFromString(amount),
		Description: "expense " + id,
		CategoryID:  categoryID,
		Date:        mustDate(t, date),
	}
}

func assertDecimal(t *testing.T, name string, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("expected %s %s, got %s", name, want, got.String())
	}
}

func ptr[T any](v T) *T {
	return &v
}
