package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/application/adapter"
)

// MoneyResponse carries an exact decimal amount and its display form.
type MoneyResponse struct {
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

// PercentResponse carries a percentage and its display form rounded to one decimal.
type PercentResponse struct {
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

// Presenter turns domain amounts into response values.
type Presenter struct {
	formatter adapter.MoneyFormatter
}

// NewPresenter creates a presenter using the given formatter.
func NewPresenter(formatter adapter.MoneyFormatter) *Presenter {
	return &Presenter{formatter: formatter}
}

// Money converts an amount.
func (p *Presenter) Money(amount decimal.Decimal) MoneyResponse {
	return MoneyResponse{
		Value:     amount.StringFixed(2),
		Formatted: p.formatter.Money(amount),
	}
}

// Percent converts a percentage. The value keeps two decimals; only the
// formatted string is rounded for display.
func (p *Presenter) Percent(percentage decimal.Decimal) PercentResponse {
	return PercentResponse{
		Value:     percentage.StringFixed(2),
		Formatted: p.formatter.Percent(percentage),
	}
}
