// Package format renders money and percentages for display with golang.org/x/text.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/expense-tracker/gateway/internal/application/adapter"
)

// Formatter implements adapter.MoneyFormatter for one currency and locale.
// Amounts never pass through float64; only grouping and separators come from
// the locale.
type Formatter struct {
	printer    *message.Printer
	symbol     string
	decimalSep string
}

// NewFormatter creates a formatter for an ISO 4217 currency code and a BCP 47
// locale, e.g. "EUR" and "de-DE".
func NewFormatter(currencyCode, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	printer := message.NewPrinter(tag)
	symbol := printer.Sprint(currency.NarrowSymbol(unit))
	if symbol == "" {
		symbol = unit.String()
	}

	// The separator is the only non-digit in a localized 0.5.
	sep := "."
	for _, r := range printer.Sprintf("%.1f", 0.5) {
		if r != '0' && r != '5' {
			sep = string(r)
			break
		}
	}

	return &Formatter{
		printer:    printer,
		symbol:     symbol,
		decimalSep: sep,
	}, nil
}

// Money formats an amount with two decimals, e.g. "$1,234.50" or "-$3.00".
func (f *Formatter) Money(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	abs := rounded.Abs()
	whole := abs.IntPart()
	cents := abs.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(f.symbol)
	b.WriteString(f.printer.Sprintf("%d", whole))
	b.WriteString(f.decimalSep)
	b.WriteString(fmt.Sprintf("%02d", cents))
	return b.String()
}

// Percent formats a percentage with one decimal place, e.g. "92.5%".
func (f *Formatter) Percent(percentage decimal.Decimal) string {
	return strings.Replace(percentage.StringFixed(1), ".", f.decimalSep, 1) + "%"
}

var _ adapter.MoneyFormatter = (*Formatter)(nil)
