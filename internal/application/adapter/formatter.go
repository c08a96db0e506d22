// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/shopspring/decimal"

// MoneyFormatter renders amounts for people, using the configured currency and locale.
type MoneyFormatter interface {
	// Money formats an amount, e.g. "$1,234.50".
	Money(amount decimal.Decimal) string

	// Percent formats a percentage with one decimal place, e.g. "92.5%".
	Percent(percentage decimal.Decimal) string
}
