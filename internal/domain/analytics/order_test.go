package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

func TestNewestFirst(t *testing.T) {
	a := newExpense(t, "a", "1", "food", "2024-03-01")
	b := newExpense(t, "b", "1", "food", "2024-03-05")
	c := newExpense(t, "c", "1", "food", "2024-03-05")
	c.CreatedAt = time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)
	b.CreatedAt = time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

	in := []entity.Expense{a, b, c}
	got := NewestFirst(in)

	if want := []string{"c", "b", "a"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
	if in[0].ID != "a" {
		t.Error("expected input order to be preserved")
	}
}

func TestRecent(t *testing.T) {
	var expenses []entity.Expense
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07"} {
		expenses = append(expenses, newExpense(t, d, "1", "food", d))
	}

	got := Recent(expenses, 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 expenses, got %d", len(got))
	}
	if got[0].ID != "2024-01-07" {
		t.Errorf("expected most recent first, got %s", got[0].ID)
	}

	if len(Recent(expenses[:2], 5)) != 2 {
		t.Error("expected short input to be returned whole")
	}
}
