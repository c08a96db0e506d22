package analytics

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

func sampleExpenses(t *testing.T) []entity.Expense {
	t.Helper()
	coffee := newExpense(t, "1", "4.50", "food", "2024-03-01")
	coffee.Description = "Morning Coffee"

	bus := newExpense(t, "2", "2.75", "transportation", "2024-03-15")
	bus.Description = "Bus ticket"
	bus.Note = "commute to the office"

	dinner := newExpense(t, "3", "38.00", "food", "2024-03-31")
	dinner.Description = "Dinner"
	dinner.Note = "Birthday with COFFEE dessert"

	rent := newExpense(t, "4", "900", "bills", "2024-04-01")
	rent.Description = "Rent"

	return []entity.Expense{coffee, bus, dinner, rent}
}

func ids(expenses []entity.Expense) []string {
	out := make([]string, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, e.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	expenses := sampleExpenses(t)

	t.Run("empty spec returns every expense in order", func(t *testing.T) {
		got := Filter(expenses, FilterSpec{})
		if !reflect.DeepEqual(got, expenses) {
			t.Errorf("expected input unchanged, got ids %v", ids(got))
		}
	})

	t.Run("search matches description or note ignoring case", func(t *testing.T) {
		got := Filter(expenses, FilterSpec{SearchTerm: "coFFee"})
		if want := []string{"1", "3"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("search matches note only", func(t *testing.T) {
		got := Filter(expenses, FilterSpec{SearchTerm: "office"})
		if want := []string{"2"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("category all disables category filter", func(t *testing.T) {
		got := Filter(expenses, FilterSpec{CategoryID: AllCategories})
		if len(got) != len(expenses) {
			t.Errorf("expected %d expenses, got %d", len(expenses), len(got))
		}
	})

	t.Run("category filter uses exact id", func(t *testing.T) {
		got := Filter(expenses, FilterSpec{CategoryID: "food"})
		if want := []string{"1", "3"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("date range is inclusive on both ends", func(t *testing.T) {
		got := Filter(expenses, FilterSpec{
			StartDate: ptr(mustDate(t, "2024-03-15")),
			EndDate:   ptr(mustDate(t, "2024-03-31")),
		})
		if want := []string{"2", "3"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("date range compares calendar days", func(t *testing.T) {
		end := mustDate(t, "2024-03-31").Add(-time.Second)
		got := Filter(expenses, FilterSpec{
			StartDate: ptr(mustDate(t, "2024-03-01").Add(12 * time.Hour)),
			EndDate:   ptr(end),
		})
		if want := []string{"1", "2"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
	})

	t.Run("single date bound does not filter", func(t *testing.T) {
		got := Filter(expenses, FilterSpec{StartDate: ptr(mustDate(t, "2024-04-01"))})
		if len(got) != len(expenses) {
			t.Errorf("expected %d expenses, got %d", len(expenses), len(got))
		}
	})

	t.Run("predicates combine with AND", func(t *testing.T) {
		spec := FilterSpec{
			SearchTerm: "coffee",
			CategoryID: "food",
			StartDate:  ptr(mustDate(t, "2024-03-02")),
			EndDate:    ptr(mustDate(t, "2024-04-30")),
		}
		got := Filter(expenses, spec)
		if want := []string{"3"}; !reflect.DeepEqual(ids(got), want) {
			t.Errorf("expected ids %v, got %v", want, ids(got))
		}
		for _, e := range got {
			if !spec.Matches(e) {
				t.Errorf("returned expense %s does not satisfy the filter", e.ID)
			}
		}
	})

	t.Run("does not mutate input and is repeatable", func(t *testing.T) {
		before := sampleExpenses(t)
		spec := FilterSpec{CategoryID: "food"}

		first := Filter(expenses, spec)
		second := Filter(expenses, spec)

		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical results for identical inputs")
		}
		if !reflect.DeepEqual(expenses, before) {
			t.Error("expected input to be left untouched")
		}
	})

	t.Run("nil input yields empty slice", func(t *testing.T) {
		got := Filter(nil, FilterSpec{SearchTerm: "x"})
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", got)
		}
	})
}

func TestFilterSpec_IsEmpty(t *testing.T) {
	start := mustDate(t, "2024-01-01")

	tests := []struct {
		name string
		spec FilterSpec
		want bool
	}{
		{name: "zero value", spec: FilterSpec{}, want: true},
		{name: "all categories", spec: FilterSpec{CategoryID: AllCategories}, want: true},
		{name: "open date range", spec: FilterSpec{StartDate: &start}, want: true},
		{name: "search term", spec: FilterSpec{SearchTerm: "a"}, want: false},
		{name: "category", spec: FilterSpec{CategoryID: "food"}, want: false},
		{name: "closed date range", spec: FilterSpec{StartDate: &start, EndDate: &start}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.IsEmpty(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFilterSpec_Validate(t *testing.T) {
	start := mustDate(t, "2024-03-10")
	end := mustDate(t, "2024-03-09")

	if err := (FilterSpec{StartDate: &start, EndDate: &end}).Validate(); !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
	if err := (FilterSpec{StartDate: &start, EndDate: &start}).Validate(); err != nil {
		t.Errorf("expected single-day range to be valid, got %v", err)
	}
	if err := (FilterSpec{StartDate: &start}).Validate(); err != nil {
		t.Errorf("expected open range to be valid, got %v", err)
	}
}
