// Package analytics is the client-side aggregation engine: a pure
// filter pass plus derived statistics over an in-memory window of
// expense records. No I/O, no mutation of the input, and every result
// is deterministic for a fixed "now".
package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/cli/pkg/api"
)

// DateRange is the named-window selector for the date predicate
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
	RangeYear  DateRange = "year"
)

// ValidDateRange reports whether s names a known date range
func ValidDateRange(s string) bool {
	switch DateRange(s) {
	case RangeAll, RangeWeek, RangeMonth, RangeYear:
		return true
	}
	return false
}

// DisplayName returns the human-readable name of the range
func (r DateRange) DisplayName() string {
	switch r {
	case RangeWeek:
		return "Last 7 days"
	case RangeMonth:
		return "Last month"
	case RangeYear:
		return "Last year"
	default:
		return "All time"
	}
}

// Filter is the ephemeral filter state of the analytics view. Zero
// value means no filtering: all time, empty selections, no bounds.
type Filter struct {
	Range      DateRange
	Categories map[string]bool
	Modes      map[api.PaymentMode]bool
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// NewFilter returns a filter that accepts everything
func NewFilter() *Filter {
	return &Filter{
		Range:      RangeAll,
		Categories: make(map[string]bool),
		Modes:      make(map[api.PaymentMode]bool),
	}
}

// Reset clears every predicate back to defaults in one update: range
// to all time, both selection sets emptied, both amount bounds removed.
func (f *Filter) Reset() {
	f.Range = RangeAll
	f.Categories = make(map[string]bool)
	f.Modes = make(map[api.PaymentMode]bool)
	f.MinAmount = nil
	f.MaxAmount = nil
}

// cutoff returns the inclusive lower date boundary for the range.
// The mechanisms deliberately differ: "week" is a fixed 7x24h
// subtraction while "month" and "year" are calendar-unit offsets.
func (f *Filter) cutoff(now time.Time) (time.Time, bool) {
	switch f.Range {
	case RangeWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case RangeMonth:
		return now.AddDate(0, -1, 0), true
	case RangeYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// Matches reports whether a single expense passes all four predicates
func (f *Filter) Matches(e api.Expense, now time.Time) bool {
	if len(f.Modes) > 0 && !f.Modes[e.PaymentMode] {
		return false
	}
	if len(f.Categories) > 0 && !f.Categories[e.Category.Name] {
		return false
	}
	if boundary, ok := f.cutoff(now); ok && e.Date.Before(boundary) {
		return false
	}
	if f.MinAmount != nil && e.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && e.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}

// Apply returns the expenses accepted by the filter, input order
// preserved. The input slice is never modified.
func (f *Filter) Apply(expenses []api.Expense, now time.Time) []api.Expense {
	filtered := make([]api.Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Matches(e, now) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
