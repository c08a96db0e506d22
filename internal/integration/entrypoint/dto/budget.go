package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/application/usecase/budget"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// BudgetRequest represents the request body for creating or updating a budget.
// A null, empty or "all" category_id makes it an overall budget.
type BudgetRequest struct {
	Amount     *decimal.Decimal `json:"amount"`
	Month      string           `json:"month"`
	CategoryID *string          `json:"category_id"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID         string        `json:"id"`
	Amount     MoneyResponse `json:"amount"`
	Month      string        `json:"month"`
	CategoryID *string       `json:"category_id"`
}

// BudgetStatusResponse represents an evaluated budget.
type BudgetStatusResponse struct {
	BudgetResponse
	CategoryName string          `json:"category_name"`
	MonthLabel   string          `json:"month_label"`
	Spent        MoneyResponse   `json:"spent"`
	Remaining    MoneyResponse   `json:"remaining"`
	Overage      MoneyResponse   `json:"overage"`
	Percentage   PercentResponse `json:"percentage"`
	Status       string          `json:"status"`
	OverBudget   bool            `json:"over_budget"`
	MatchedCount int             `json:"matched_count"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets        []BudgetStatusResponse `json:"budgets"`
	InvalidBudgets []string               `json:"invalid_budgets,omitempty"`
	AlertsQueued   int                    `json:"alerts_queued"`
}

// ToBudgetResponse converts a budget entity to a response DTO.
func (p *Presenter) ToBudgetResponse(b entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID,
		Amount:     p.Money(b.Amount),
		Month:      b.Month.String(),
		CategoryID: b.CategoryID,
	}
}

// ToBudgetStatusResponse converts an evaluated budget to a response DTO.
func (p *Presenter) ToBudgetStatusResponse(s entity.BudgetStatus, categoryName, monthLabel string) BudgetStatusResponse {
	return BudgetStatusResponse{
		BudgetResponse: p.ToBudgetResponse(s.Budget),
		CategoryName:   categoryName,
		MonthLabel:     monthLabel,
		Spent:          p.Money(s.Spent),
		Remaining:      p.Money(s.Remaining),
		Overage:        p.Money(s.Overage),
		Percentage:     p.Percent(s.Percentage),
		Status:         string(s.Status),
		OverBudget:     s.IsOverBudget(),
		MatchedCount:   s.MatchedCount,
	}
}

// ToBudgetListResponse converts the list output to a response DTO.
func (p *Presenter) ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetStatusResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = p.ToBudgetStatusResponse(b.BudgetStatus, b.CategoryName, b.MonthLabel)
	}
	return BudgetListResponse{
		Budgets:        budgets,
		InvalidBudgets: output.InvalidBudgets,
		AlertsQueued:   output.AlertsQueued,
	}
}
