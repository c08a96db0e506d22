// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"
)

// MonthKey identifies a calendar month in "YYYY-MM" form.
// Keys sort chronologically when compared as strings.
type MonthKey string

const monthKeyLayout = "2006-01"

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// MonthKeyOf returns the month key for the given date.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format(monthKeyLayout))
}

// ParseMonthKey validates a "YYYY-MM" string.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse(monthKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return MonthKeyOf(t), nil
}

// Start returns the first day of the month at UTC midnight.
func (m MonthKey) Start() time.Time {
	t, err := time.Parse(monthKeyLayout, string(m))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Label returns a short human-readable label such as "Mar 2024".
func (m MonthKey) Label() string {
	t := m.Start()
	if t.IsZero() {
		return string(m)
	}
	return fmt.Sprintf("%s %d", monthAbbreviations[t.Month()], t.Year())
}

// LongLabel returns a label such as "March 2024".
func (m MonthKey) LongLabel() string {
	t := m.Start()
	if t.IsZero() {
		return string(m)
	}
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}

// String implements fmt.Stringer.
func (m MonthKey) String() string {
	return string(m)
}
