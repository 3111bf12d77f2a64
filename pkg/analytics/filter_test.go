package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/cli/pkg/api"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)

func expense(id string, amount float64, category string, mode api.PaymentMode, daysAgo int) api.Expense {
	return api.Expense{
		ID:          id,
		Amount:      decimal.NewFromFloat(amount),
		Category:    api.Category{Name: category},
		PaymentMode: mode,
		Date:        testNow.AddDate(0, 0, -daysAgo),
		Currency:    "INR",
	}
}

func sampleExpenses() []api.Expense {
	return []api.Expense{
		expense("e1", 120, "Food", api.PaymentCash, 0),
		expense("e2", 80, "Food", api.PaymentUPI, 2),
		expense("e3", 2500, "Rent", api.PaymentBankTransfer, 10),
		expense("e4", 340, "Travel", api.PaymentCard, 40),
		expense("e5", 60, "Food", api.PaymentWallet, 200),
		expense("e6", 999, "Shopping", api.PaymentUPI, 400),
	}
}

func TestApplyNoFiltersIsIdentity(t *testing.T) {
	input := sampleExpenses()
	filter := NewFilter()

	filtered := filter.Apply(input, testNow)

	require.Equal(t, input, filtered, "all-time unfiltered pass must return the input unchanged in order")
}

func TestApplyNeverMutatesInput(t *testing.T) {
	input := sampleExpenses()
	snapshot := make([]api.Expense, len(input))
	copy(snapshot, input)

	filter := NewFilter()
	filter.Modes[api.PaymentUPI] = true
	filter.Apply(input, testNow)

	assert.Equal(t, snapshot, input)
}

func TestPaymentModePredicate(t *testing.T) {
	filter := NewFilter()
	filter.Modes[api.PaymentCash] = true
	filter.Modes[api.PaymentUPI] = true

	filtered := filter.Apply(sampleExpenses(), testNow)

	require.Len(t, filtered, 3)
	for _, e := range filtered {
		assert.Contains(t, []api.PaymentMode{api.PaymentCash, api.PaymentUPI}, e.PaymentMode)
	}
}

func TestCategoryPredicate(t *testing.T) {
	filter := NewFilter()
	filter.Categories["Food"] = true

	filtered := filter.Apply(sampleExpenses(), testNow)

	require.Len(t, filtered, 3)
	for _, e := range filtered {
		assert.Equal(t, "Food", e.Category.Name)
	}
}

func TestAmountBounds(t *testing.T) {
	amounts := []float64{50, 100, 300, 500, 501}
	input := make([]api.Expense, len(amounts))
	for i, a := range amounts {
		input[i] = expense("e", a, "Misc", api.PaymentCash, 0)
	}

	min := decimal.NewFromInt(100)
	max := decimal.NewFromInt(500)
	filter := NewFilter()
	filter.MinAmount = &min
	filter.MaxAmount = &max

	filtered := filter.Apply(input, testNow)

	require.Len(t, filtered, 3)
	got := make([]string, len(filtered))
	for i, e := range filtered {
		got[i] = e.Amount.String()
	}
	assert.Equal(t, []string{"100", "300", "500"}, got, "bounds are inclusive on both ends")
}

func TestDatePredicateWeekIsFixedSevenDays(t *testing.T) {
	boundary := testNow.Add(-7 * 24 * time.Hour)
	inside := api.Expense{Amount: decimal.NewFromInt(1), Date: boundary}
	outside := api.Expense{Amount: decimal.NewFromInt(1), Date: boundary.Add(-time.Second)}

	filter := NewFilter()
	filter.Range = RangeWeek

	filtered := filter.Apply([]api.Expense{inside, outside}, testNow)

	require.Len(t, filtered, 1)
	assert.True(t, filtered[0].Date.Equal(boundary), "record exactly on the boundary is accepted")
}

func TestDatePredicateMonthUsesCalendarOffset(t *testing.T) {
	filter := NewFilter()
	filter.Range = RangeMonth

	filtered := filter.Apply(sampleExpenses(), testNow)

	// e1 (today), e2 (2d), e3 (10d) are within a calendar month
	require.Len(t, filtered, 3)
}

func TestDatePredicateYear(t *testing.T) {
	filter := NewFilter()
	filter.Range = RangeYear

	filtered := filter.Apply(sampleExpenses(), testNow)

	// Everything except e6 at 400 days out
	require.Len(t, filtered, 5)
}

func TestCombinedPredicatesAreIndependent(t *testing.T) {
	min := decimal.NewFromInt(70)
	filter := NewFilter()
	filter.Range = RangeMonth
	filter.Categories["Food"] = true
	filter.Modes[api.PaymentUPI] = true
	filter.MinAmount = &min

	filtered := filter.Apply(sampleExpenses(), testNow)

	require.Len(t, filtered, 1)
	assert.Equal(t, "e2", filtered[0].ID)
}

func TestResetClearsEverythingAtOnce(t *testing.T) {
	min := decimal.NewFromInt(1)
	max := decimal.NewFromInt(2)
	filter := NewFilter()
	filter.Range = RangeWeek
	filter.Categories["Food"] = true
	filter.Modes[api.PaymentCash] = true
	filter.MinAmount = &min
	filter.MaxAmount = &max

	filter.Reset()

	assert.Equal(t, RangeAll, filter.Range)
	assert.Empty(t, filter.Categories)
	assert.Empty(t, filter.Modes)
	assert.Nil(t, filter.MinAmount)
	assert.Nil(t, filter.MaxAmount)

	input := sampleExpenses()
	assert.Equal(t, input, filter.Apply(input, testNow))
}

func TestValidDateRange(t *testing.T) {
	for _, valid := range []string{"all", "week", "month", "year"} {
		assert.True(t, ValidDateRange(valid), valid)
	}
	for _, invalid := range []string{"", "day", "fortnight", "ALL"} {
		assert.False(t, ValidDateRange(invalid), invalid)
	}
}
