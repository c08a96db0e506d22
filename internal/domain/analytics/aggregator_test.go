package analytics

import (
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

func TestAggregate_EmptyInput(t *testing.T) {
	got := Aggregate(nil, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	if len(got.Categories) != 0 {
		t.Errorf("expected no category summaries, got %d", len(got.Categories))
	}
	if len(got.Months) != 0 {
		t.Errorf("expected no monthly summaries, got %d", len(got.Months))
	}
	if !got.TopCategory.IsNone() {
		t.Errorf("expected top category None, got %s", got.TopCategory.CategoryID)
	}
	assertDecimal(t, "top amount", "0", got.TopCategory.Amount)
	assertDecimal(t, "grand total", "0", got.GrandTotal)
	assertDecimal(t, "average", "0", got.Average)
	assertDecimal(t, "current month total", "0", got.CurrentMonthTotal)
	if got.Count != 0 {
		t.Errorf("expected count 0, got %d", got.Count)
	}
}

func TestAggregate(t *testing.T) {
	now := time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC)
	expenses := []entity.Expense{
		newExpense(t, "1", "50", "food", "2024-03-01"),
		newExpense(t, "2", "150", "transport", "2024-03-15"),
		newExpense(t, "3", "25.50", "food", "2024-02-10"),
		newExpense(t, "4", "74.50", "bills", "2023-12-31"),
	}

	got := Aggregate(expenses, now)

	t.Run("category summaries keep first-occurrence order", func(t *testing.T) {
		var order []string
		for _, c := range got.Categories {
			order = append(order, c.CategoryID)
		}
		if want := []string{"food", "transport", "bills"}; !reflect.DeepEqual(order, want) {
			t.Errorf("expected order %v, got %v", want, order)
		}
		assertDecimal(t, "food amount", "75.5", got.Categories[0].Amount)
		if got.Categories[0].Count != 2 {
			t.Errorf("expected food count 2, got %d", got.Categories[0].Count)
		}
	})

	t.Run("category amounts sum to grand total", func(t *testing.T) {
		sum := decimal.Zero
		for _, c := range got.Categories {
			sum = sum.Add(c.Amount)
		}
		assertDecimal(t, "grand total", "300", got.GrandTotal)
		if !sum.Equal(got.GrandTotal) {
			t.Errorf("expected categories to sum to %s, got %s", got.GrandTotal, sum)
		}
	})

	t.Run("percentages use the grand total and add up to 100", func(t *testing.T) {
		assertDecimal(t, "transport percentage", "50", got.Categories[1].Percentage)

		sum := decimal.Zero
		for _, c := range got.Categories {
			sum = sum.Add(c.Percentage)
		}
		if sum.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(decimal.RequireFromString("0.0001")) {
			t.Errorf("expected percentages to sum to 100, got %s", sum)
		}
	})

	t.Run("monthly summaries sorted ascending with labels", func(t *testing.T) {
		var months []string
		for _, m := range got.Months {
			months = append(months, string(m.Month))
		}
		if want := []string{"2023-12", "2024-02", "2024-03"}; !reflect.DeepEqual(months, want) {
			t.Errorf("expected months %v, got %v", want, months)
		}
		if got.Months[2].Label != "Mar 2024" {
			t.Errorf("expected label Mar 2024, got %s", got.Months[2].Label)
		}
		assertDecimal(t, "march total", "200", got.Months[2].Total)
		if got.Months[2].Count != 2 {
			t.Errorf("expected march count 2, got %d", got.Months[2].Count)
		}
	})

	t.Run("top category, average and current month", func(t *testing.T) {
		if got.TopCategory.CategoryID != "transport" {
			t.Errorf("expected top category transport, got %s", got.TopCategory.CategoryID)
		}
		assertDecimal(t, "top amount", "150", got.TopCategory.Amount)
		assertDecimal(t, "average", "75", got.Average)
		assertDecimal(t, "current month total", "200", got.CurrentMonthTotal)
		if got.Count != 4 {
			t.Errorf("expected count 4, got %d", got.Count)
		}
	})

	t.Run("repeated calls are value-equal", func(t *testing.T) {
		again := Aggregate(expenses, now)
		if !reflect.DeepEqual(got, again) {
			t.Error("expected identical aggregations for identical inputs")
		}
	})
}

func TestAggregate_TopCategoryTieGoesToFirst(t *testing.T) {
	expenses := []entity.Expense{
		newExpense(t, "1", "40", "travel", "2024-05-01"),
		newExpense(t, "2", "40", "food", "2024-05-02"),
	}

	got := Aggregate(expenses, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC))
	if got.TopCategory.CategoryID != "travel" {
		t.Errorf("expected tie to go to travel, got %s", got.TopCategory.CategoryID)
	}
}

func TestAggregate_NegativeAmountsContributeZero(t *testing.T) {
	expenses := []entity.Expense{
		newExpense(t, "1", "-30", "food", "2024-05-01"),
		newExpense(t, "2", "10", "food", "2024-05-02"),
	}

	got := Aggregate(expenses, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC))
	assertDecimal(t, "grand total", "10", got.GrandTotal)
	assertDecimal(t, "average", "5", got.Average)
	assertDecimal(t, "food percentage", "100", got.Categories[0].Percentage)
}

func TestCategorySummary_ZeroTotal(t *testing.T) {
	expenses := []entity.Expense{
		newExpense(t, "1", "0", "food", "2024-05-01"),
	}

	got := CategorySummary(expenses)
	if len(got) != 1 {
		t.Fatalf("expected one summary, got %d", len(got))
	}
	assertDecimal(t, "percentage", "0", got[0].Percentage)
}

func TestMonthlySummary_AlwaysSorted(t *testing.T) {
	dates := []string{"2025-01-05", "2023-07-19", "2024-12-01", "2023-07-01", "2024-02-29"}
	expenses := make([]entity.Expense, 0, len(dates))
	for i, d := range dates {
		expenses = append(expenses, newExpense(t, string(rune('a'+i)), "1", "other", d))
	}

	got := MonthlySummary(expenses)
	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Month < got[j].Month }) {
		t.Errorf("expected ascending months, got %v", got)
	}
	if len(got) != 4 {
		t.Errorf("expected 4 months, got %d", len(got))
	}
}

func TestSortByAmountDesc(t *testing.T) {
	in := []entity.CategorySummary{
		{CategoryID: "a", Amount: decimal.NewFromInt(5)},
		{CategoryID: "b", Amount: decimal.NewFromInt(20)},
		{CategoryID: "c", Amount: decimal.NewFromInt(5)},
	}

	got := SortByAmountDesc(in)

	var order []string
	for _, s := range got {
		order = append(order, s.CategoryID)
	}
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("expected order %v, got %v", want, order)
	}
	if in[0].CategoryID != "a" {
		t.Error("expected input slice to be left untouched")
	}
}

func TestPercentage(t *testing.T) {
	assertDecimal(t, "zero total", "0", Percentage(decimal.NewFromInt(5), decimal.Zero))
	assertDecimal(t, "quarter", "25", Percentage(decimal.NewFromInt(25), decimal.NewFromInt(100)))
}
