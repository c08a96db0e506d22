// Package analytics contains the pure expense analytics: filtering, aggregation
// and budget evaluation. Every function here derives fresh values from its
// arguments and never mutates them.
package analytics

import (
	"strings"
	"time"

	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// AllCategories is the category selector that disables category filtering.
const AllCategories = "all"

// FilterSpec holds the user-selected predicates. Zero values are inactive.
type FilterSpec struct {
	SearchTerm string
	CategoryID string
	StartDate  *time.Time
	EndDate    *time.Time
}

// IsEmpty reports whether no predicate is active.
func (s FilterSpec) IsEmpty() bool {
	return s.SearchTerm == "" && !s.filtersCategory() && !s.HasDateRange()
}

// HasDateRange reports whether the date predicate is active.
// A single open bound does not filter.
func (s FilterSpec) HasDateRange() bool {
	return s.StartDate != nil && s.EndDate != nil
}

func (s FilterSpec) filtersCategory() bool {
	return s.CategoryID != "" && s.CategoryID != AllCategories
}

// Validate rejects a closed date range whose end precedes its start.
func (s FilterSpec) Validate() error {
	if s.HasDateRange() && calendarDay(*s.EndDate).Before(calendarDay(*s.StartDate)) {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// Matches reports whether the expense satisfies every active predicate.
func (s FilterSpec) Matches(e entity.Expense) bool {
	if s.SearchTerm != "" {
		term := strings.ToLower(s.SearchTerm)
		if !strings.Contains(strings.ToLower(e.Description), term) &&
			!strings.Contains(strings.ToLower(e.Note), term) {
			return false
		}
	}

	if s.filtersCategory() && e.CategoryID != s.CategoryID {
		return false
	}

	if s.HasDateRange() {
		day := calendarDay(e.Date)
		if day.Before(calendarDay(*s.StartDate)) || day.After(calendarDay(*s.EndDate)) {
			return false
		}
	}

	return true
}

// Filter returns the expenses that satisfy spec, preserving their order.
// The result is always a new slice.
func Filter(expenses []entity.Expense, spec FilterSpec) []entity.Expense {
	out := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if spec.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// calendarDay drops the clock part, keeping the date as written in t's location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
