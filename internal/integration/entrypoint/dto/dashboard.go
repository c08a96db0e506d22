// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/gateway/internal/application/usecase/budget"
	"github.com/expense-tracker/gateway/internal/application/usecase/dashboard"
)

// SummaryResponse represents the response for the dashboard summary API.
type SummaryResponse struct {
	Data SummaryData `json:"data"`
}

// SummaryData represents the summary cards.
type SummaryData struct {
	TotalExpenses     MoneyResponse           `json:"total_expenses"`
	CurrentMonthTotal MoneyResponse           `json:"current_month_total"`
	CurrentMonth      string                  `json:"current_month"`
	AverageExpense    MoneyResponse           `json:"average_expense"`
	ExpenseCount      int                     `json:"expense_count"`
	TopCategory       TopCategoryResponse     `json:"top_category"`
	OverallBudget     *BudgetStatusResponse   `json:"overall_budget"`
	RecentExpenses    []RecentExpenseResponse `json:"recent_expenses"`
}

// TopCategoryResponse represents the top category card.
type TopCategoryResponse struct {
	CategoryID   string        `json:"category_id"`
	CategoryName string        `json:"category_name"`
	Amount       MoneyResponse `json:"amount"`
}

// RecentExpenseResponse represents an expense in the recent list.
type RecentExpenseResponse struct {
	ExpenseResponse
}

// CategoryBreakdownResponse represents the response for the category breakdown API.
type CategoryBreakdownResponse struct {
	Data CategoryBreakdownData `json:"data"`
}

// CategoryBreakdownData represents the data section of the category breakdown response.
type CategoryBreakdownData struct {
	TotalExpenses MoneyResponse                   `json:"total_expenses"`
	Categories    []CategoryBreakdownItemResponse `json:"categories"`
}

// CategoryBreakdownItemResponse represents a single category in the breakdown.
type CategoryBreakdownItemResponse struct {
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	CategoryColor string          `json:"category_color"`
	CategoryIcon  string          `json:"category_icon"`
	Amount        MoneyResponse   `json:"amount"`
	Percentage    PercentResponse `json:"percentage"`
	ExpenseCount  int             `json:"expense_count"`
}

// MonthlyTrendsResponse represents the response for the monthly trends API.
type MonthlyTrendsResponse struct {
	Data MonthlyTrendsData `json:"data"`
}

// MonthlyTrendsData represents the data section of the monthly trends response.
type MonthlyTrendsData struct {
	Months []MonthlyTrendItem `json:"months"`
}

// MonthlyTrendItem represents the total of one month.
type MonthlyTrendItem struct {
	Month        string        `json:"month"`
	Label        string        `json:"label"`
	Total        MoneyResponse `json:"total"`
	ExpenseCount int           `json:"expense_count"`
}

// DataRangeResponse represents the response for data range API.
type DataRangeResponse struct {
	Data DataRangeData `json:"data"`
}

// DataRangeData represents the data section of data range response.
type DataRangeData struct {
	OldestDate    *string `json:"oldest_date"`
	NewestDate    *string `json:"newest_date"`
	TotalExpenses int     `json:"total_expenses"`
	HasData       bool    `json:"has_data"`
}

// ToSummaryResponse converts a GetSummaryOutput to SummaryResponse DTO.
func (p *Presenter) ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	recent := make([]RecentExpenseResponse, len(output.RecentExpenses))
	for i, e := range output.RecentExpenses {
		resp := p.ToExpenseResponse(e.Expense)
		resp.CategoryName = e.CategoryName
		resp.CategoryColor = e.CategoryColor
		recent[i] = RecentExpenseResponse{ExpenseResponse: resp}
	}

	var overall *BudgetStatusResponse
	if output.OverallBudget != nil {
		status := p.ToBudgetStatusResponse(*output.OverallBudget, budget.OverallBudgetName, output.CurrentMonth.LongLabel())
		overall = &status
	}

	return SummaryResponse{
		Data: SummaryData{
			TotalExpenses:     p.Money(output.TotalExpenses),
			CurrentMonthTotal: p.Money(output.CurrentMonthTotal),
			CurrentMonth:      output.CurrentMonth.String(),
			AverageExpense:    p.Money(output.AverageExpense),
			ExpenseCount:      output.ExpenseCount,
			TopCategory: TopCategoryResponse{
				CategoryID:   output.TopCategory.CategoryID,
				CategoryName: output.TopCategory.CategoryName,
				Amount:       p.Money(output.TopCategory.Amount),
			},
			OverallBudget:  overall,
			RecentExpenses: recent,
		},
	}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to CategoryBreakdownResponse DTO.
func (p *Presenter) ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryBreakdownItemResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryBreakdownItemResponse{
			CategoryID:    c.CategoryID,
			CategoryName:  c.CategoryName,
			CategoryColor: c.CategoryColor,
			CategoryIcon:  c.CategoryIcon,
			Amount:        p.Money(c.Amount),
			Percentage:    p.Percent(c.Percentage),
			ExpenseCount:  c.ExpenseCount,
		}
	}

	return CategoryBreakdownResponse{
		Data: CategoryBreakdownData{
			TotalExpenses: p.Money(output.TotalExpenses),
			Categories:    categories,
		},
	}
}

// ToMonthlyTrendsResponse converts a GetMonthlyTrendsOutput to MonthlyTrendsResponse DTO.
func (p *Presenter) ToMonthlyTrendsResponse(output *dashboard.GetMonthlyTrendsOutput) MonthlyTrendsResponse {
	months := make([]MonthlyTrendItem, len(output.Months))
	for i, m := range output.Months {
		months[i] = MonthlyTrendItem{
			Month:        m.Month.String(),
			Label:        m.Label,
			Total:        p.Money(m.Total),
			ExpenseCount: m.Count,
		}
	}
	return MonthlyTrendsResponse{Data: MonthlyTrendsData{Months: months}}
}

// ToDataRangeResponse converts a GetDataRangeOutput to DataRangeResponse DTO.
func ToDataRangeResponse(output *dashboard.GetDataRangeOutput) DataRangeResponse {
	var oldestDate, newestDate *string
	if output.OldestDate != nil {
		s := output.OldestDate.Format(DateLayout)
		oldestDate = &s
	}
	if output.NewestDate != nil {
		s := output.NewestDate.Format(DateLayout)
		newestDate = &s
	}

	return DataRangeResponse{
		Data: DataRangeData{
			OldestDate:    oldestDate,
			NewestDate:    newestDate,
			TotalExpenses: output.TotalExpenses,
			HasData:       output.HasData,
		},
	}
}
