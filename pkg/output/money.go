package output

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/cli/pkg/config"
	"github.com/spendwise/cli/pkg/prefs"
)

// maskedAmount stands in for every monetary value when the
// hide-amounts preference is on
const maskedAmount = "••••"

// CurrencySymbol maps an ISO currency code to its display symbol
func CurrencySymbol(code string) string {
	switch code {
	case "INR":
		return "₹"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}

// ActiveCurrencySymbol returns the symbol for the configured currency
func ActiveCurrencySymbol() string {
	return CurrencySymbol(config.GetString("api.currency"))
}

// FormatAmount renders a monetary value for display, honoring the
// hide-amounts preference
func FormatAmount(amount decimal.Decimal) string {
	if prefs.HideAmounts() {
		return maskedAmount
	}
	return ActiveCurrencySymbol() + amount.StringFixed(2)
}
