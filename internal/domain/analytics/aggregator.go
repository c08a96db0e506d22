package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Aggregation is the full set of summaries derived from one expense collection.
type Aggregation struct {
	Categories        []entity.CategorySummary // First-occurrence order
	Months            []entity.MonthlySummary  // Ascending by month
	TopCategory       entity.TopCategory
	GrandTotal        decimal.Decimal
	Average           decimal.Decimal
	CurrentMonthTotal decimal.Decimal
	Count             int
}

// Aggregate derives every summary for expenses. now selects the current month.
func Aggregate(expenses []entity.Expense, now time.Time) Aggregation {
	categories := CategorySummary(expenses)
	total := TotalOf(expenses)

	return Aggregation{
		Categories:        categories,
		Months:            MonthlySummary(expenses),
		TopCategory:       topCategory(categories),
		GrandTotal:        total,
		Average:           average(total, len(expenses)),
		CurrentMonthTotal: TotalOf(InMonth(expenses, entity.MonthKeyOf(now))),
		Count:             len(expenses),
	}
}

// CategorySummary groups expenses by category id in order of first occurrence.
func CategorySummary(expenses []entity.Expense) []entity.CategorySummary {
	index := make(map[string]int)
	summaries := make([]entity.CategorySummary, 0)

	for _, e := range expenses {
		i, ok := index[e.CategoryID]
		if !ok {
			i = len(summaries)
			index[e.CategoryID] = i
			summaries = append(summaries, entity.CategorySummary{
				CategoryID: e.CategoryID,
				Amount:     decimal.Zero,
			})
		}
		summaries[i].Amount = summaries[i].Amount.Add(contribution(e))
		summaries[i].Count++
	}

	total := decimal.Zero
	for _, s := range summaries {
		total = total.Add(s.Amount)
	}
	for i := range summaries {
		summaries[i].Percentage = Percentage(summaries[i].Amount, total)
	}

	return summaries
}

// MonthlySummary groups expenses by year-month, sorted ascending.
func MonthlySummary(expenses []entity.Expense) []entity.MonthlySummary {
	byMonth := make(map[entity.MonthKey]*entity.MonthlySummary)

	for _, e := range expenses {
		key := e.Month()
		s, ok := byMonth[key]
		if !ok {
			s = &entity.MonthlySummary{Month: key, Label: key.Label(), Total: decimal.Zero}
			byMonth[key] = s
		}
		s.Total = s.Total.Add(contribution(e))
		s.Count++
	}

	months := make([]entity.MonthlySummary, 0, len(byMonth))
	for _, s := range byMonth {
		months = append(months, *s)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})

	return months
}

// SortByAmountDesc returns a copy of summaries ordered by descending amount.
// Equal amounts keep their relative order.
func SortByAmountDesc(summaries []entity.CategorySummary) []entity.CategorySummary {
	out := make([]entity.CategorySummary, len(summaries))
	copy(out, summaries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// TotalOf sums the contributions of expenses.
func TotalOf(expenses []entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(contribution(e))
	}
	return total
}

// InMonth returns the expenses whose date falls in month.
func InMonth(expenses []entity.Expense, month entity.MonthKey) []entity.Expense {
	out := make([]entity.Expense, 0)
	for _, e := range expenses {
		if e.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// Percentage returns part/total*100, or zero when total is not positive.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total)
}

// topCategory picks the largest total; ties go to the first encountered.
func topCategory(summaries []entity.CategorySummary) entity.TopCategory {
	if len(summaries) == 0 {
		return entity.TopCategory{CategoryID: entity.NoneCategory, Amount: decimal.Zero}
	}

	top := summaries[0]
	for _, s := range summaries[1:] {
		if s.Amount.GreaterThan(top.Amount) {
			top = s
		}
	}
	return entity.TopCategory{CategoryID: top.CategoryID, Amount: top.Amount}
}

func average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

// contribution is the amount an expense adds to any sum.
// Negative amounts should have been rejected upstream and count as zero here.
func contribution(e entity.Expense) decimal.Decimal {
	if e.Amount.IsNegative() {
		return decimal.Zero
	}
	return e.Amount
}
