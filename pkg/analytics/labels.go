package analytics

import "fmt"

// Label derivation: short human-readable chips summarizing the active
// filter state, matching what the filter bar shows.

// RangeLabel describes the active date range
func (f *Filter) RangeLabel() string {
	return f.Range.DisplayName()
}

// ModeLabel describes the payment-mode selection
func (f *Filter) ModeLabel() string {
	switch len(f.Modes) {
	case 0:
		return "All"
	case 1:
		for m := range f.Modes {
			return m.DisplayName()
		}
	}
	return fmt.Sprintf("%d selected", len(f.Modes))
}

// CategoryLabel describes the category selection
func (f *Filter) CategoryLabel() string {
	switch len(f.Categories) {
	case 0:
		return "All"
	case 1:
		for name := range f.Categories {
			return name
		}
	}
	return fmt.Sprintf("%d selected", len(f.Categories))
}

// AmountLabel describes the amount bounds, e.g. "Over ₹100"
func (f *Filter) AmountLabel(symbol string) string {
	switch {
	case f.MinAmount != nil && f.MaxAmount != nil:
		return fmt.Sprintf("%s%s - %s%s", symbol, f.MinAmount.String(), symbol, f.MaxAmount.String())
	case f.MinAmount != nil:
		return fmt.Sprintf("Over %s%s", symbol, f.MinAmount.String())
	case f.MaxAmount != nil:
		return fmt.Sprintf("Under %s%s", symbol, f.MaxAmount.String())
	default:
		return "Any"
	}
}

// Chips returns every chip in display order
func (f *Filter) Chips(symbol string) []string {
	return []string{
		f.RangeLabel(),
		f.CategoryLabel(),
		f.ModeLabel(),
		f.AmountLabel(symbol),
	}
}
