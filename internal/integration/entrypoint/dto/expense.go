package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/application/usecase/expense"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// ExpenseRequest represents the request body for creating or updating an expense.
// Amount accepts a JSON number or a numeric string.
type ExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
	CategoryID  string           `json:"category_id"`
	Date        string           `json:"date"`
	Note        string           `json:"note"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID            string        `json:"id"`
	Amount        MoneyResponse `json:"amount"`
	Description   string        `json:"description"`
	CategoryID    string        `json:"category_id"`
	CategoryName  string        `json:"category_name,omitempty"`
	CategoryColor string        `json:"category_color,omitempty"`
	CategoryIcon  string        `json:"category_icon,omitempty"`
	Date          string        `json:"date"`
	Note          string        `json:"note,omitempty"`
	CreatedAt     *time.Time    `json:"created_at,omitempty"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses     []ExpenseResponse `json:"expenses"`
	MatchedCount int               `json:"matched_count"`
	MatchedTotal MoneyResponse     `json:"matched_total"`
	OverallCount int               `json:"overall_count"`
}

// ToExpenseResponse converts an expense entity to a response DTO.
func (p *Presenter) ToExpenseResponse(e entity.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.ID,
		Amount:      p.Money(e.Amount),
		Description: e.Description,
		CategoryID:  e.CategoryID,
		Date:        e.Date.Format(DateLayout),
		Note:        e.Note,
	}
	if !e.CreatedAt.IsZero() {
		createdAt := e.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// ToExpenseListResponse converts the list output to a response DTO.
func (p *Presenter) ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		resp := p.ToExpenseResponse(e.Expense)
		resp.CategoryName = e.CategoryName
		resp.CategoryColor = e.CategoryColor
		resp.CategoryIcon = e.CategoryIcon
		expenses[i] = resp
	}
	return ExpenseListResponse{
		Expenses:     expenses,
		MatchedCount: output.MatchedCount,
		MatchedTotal: p.Money(output.MatchedTotal),
		OverallCount: output.OverallCount,
	}
}
