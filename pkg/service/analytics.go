package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spendwise/cli/pkg/analytics"
	"github.com/spendwise/cli/pkg/api"
	"github.com/spendwise/cli/pkg/charts"
	"github.com/spendwise/cli/pkg/client"
	"github.com/spendwise/cli/pkg/errors"
	"github.com/spendwise/cli/pkg/formatter"
	"github.com/spendwise/cli/pkg/heatmap"
	"github.com/spendwise/cli/pkg/logger"
	"github.com/spendwise/cli/pkg/output"
)

// windowDays is how much history the analytics view fetches, in one
// request rather than one per day.
const windowDays = 365

type AnalyticsService struct{}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// analyticsData is everything the analytics view fetches on load. The
// three requests are independent; a failed one leaves its field empty
// and never blocks the others.
type analyticsData struct {
	Expenses  []api.Expense
	Recurring *api.RecurringResponse
	Breakdown *api.PaymentBreakdownResponse
}

// fetch loads the expense window, recurring summary, and payment
// breakdown concurrently. Each fetch owns its failure: it logs, leaves
// a zero value, and reports success so the group never cancels.
func (s *AnalyticsService) fetch(ctx context.Context, breakdownPeriod string) *analyticsData {
	client.Init()

	data := &analyticsData{}
	now := time.Now()

	var g errgroup.Group
	g.Go(func() error {
		expenses, err := api.GetExpenseRange(ctx, now.AddDate(0, 0, -windowDays), now)
		if err != nil {
			logger.Error("Failed to fetch expense window", "error", err)
			return nil
		}
		data.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		recurring, err := api.GetRecurring(ctx)
		if err != nil {
			logger.Error("Failed to fetch recurring payments", "error", err)
			return nil
		}
		data.Recurring = recurring
		return nil
	})
	g.Go(func() error {
		breakdown, err := api.GetPaymentBreakdown(ctx, breakdownPeriod)
		if err != nil {
			logger.Error("Failed to fetch payment breakdown", "error", err)
			return nil
		}
		data.Breakdown = breakdown
		return nil
	})
	_ = g.Wait()

	return data
}

// fetchWindow loads just the expense window. A failed fetch degrades
// to an empty list so every statistic renders as zero.
func (s *AnalyticsService) fetchWindow(ctx context.Context) []api.Expense {
	client.Init()

	now := time.Now()
	expenses, err := api.GetExpenseRange(ctx, now.AddDate(0, 0, -windowDays), now)
	if err != nil {
		logger.Error("Failed to fetch expense window", "error", err)
		formatter.PrintWarning("Could not load expenses; showing empty analytics")
		return nil
	}
	return expenses
}

// Summary renders the full analytics view: active filter chips,
// summary statistics, category breakdown, and the 7-day trend
func (s *AnalyticsService) Summary(ctx context.Context, filter *analytics.Filter) error {
	data := s.fetch(ctx, "month")
	now := time.Now()

	filtered := filter.Apply(data.Expenses, now)
	stats := analytics.Compute(filtered, now)
	symbol := output.ActiveCurrencySymbol()

	formatter.PrintInfo("Filters: %s | %s | %s | %s",
		filter.RangeLabel(), filter.CategoryLabel(), filter.ModeLabel(), filter.AmountLabel(symbol))
	fmt.Println()

	formatter.PrintKeyValue(map[string]interface{}{
		"Total":        formatter.Amount(stats.Total),
		"Average":      formatter.Amount(stats.Mean),
		"Largest":      formatter.Amount(stats.Max),
		"Transactions": stats.Count,
	})
	fmt.Println()

	s.printBreakdown(stats.Breakdown)
	fmt.Println()
	s.printTrend(stats.WeeklyTrend)

	if data.Recurring != nil && len(data.Recurring.Recurring) > 0 {
		fmt.Println()
		formatter.PrintInfo("Recurring: %d patterns, about %s per month",
			len(data.Recurring.Recurring), formatter.Amount(data.Recurring.MonthlyEstimate))
	}

	return nil
}

// Trend renders only the 7-day trend
func (s *AnalyticsService) Trend(ctx context.Context, filter *analytics.Filter) error {
	now := time.Now()
	filtered := filter.Apply(s.fetchWindow(ctx), now)
	s.printTrend(analytics.DailyTotals(filtered, now, 7))
	return nil
}

// Breakdown renders only the category breakdown
func (s *AnalyticsService) Breakdown(ctx context.Context, filter *analytics.Filter) error {
	now := time.Now()
	filtered := filter.Apply(s.fetchWindow(ctx), now)
	s.printBreakdown(analytics.CategoryBreakdown(filtered))
	return nil
}

// Heatmap renders the trailing year of daily spending as a grid
func (s *AnalyticsService) Heatmap(ctx context.Context, filter *analytics.Filter, days int) error {
	now := time.Now()
	filtered := filter.Apply(s.fetchWindow(ctx), now)
	fmt.Print(heatmap.Render(analytics.DailyTotals(filtered, now, days)))
	return nil
}

// Chart renders a PNG chart (trend or breakdown) into outDir
func (s *AnalyticsService) Chart(ctx context.Context, filter *analytics.Filter, kind, outDir string) error {
	now := time.Now()
	filtered := filter.Apply(s.fetchWindow(ctx), now)
	symbol := output.ActiveCurrencySymbol()

	var png []byte
	var err error
	switch kind {
	case "trend":
		png, err = charts.TrendChart(analytics.DailyTotals(filtered, now, 7), symbol)
	case "breakdown":
		png, err = charts.BreakdownChart(analytics.CategoryBreakdown(filtered), symbol)
	default:
		return errors.ValidationError("kind", "must be 'trend' or 'breakdown'")
	}
	if err != nil {
		formatter.PrintError("Failed to render chart: %v", err)
		return err
	}

	path := filepath.Join(outDir, fmt.Sprintf("spendwise_%s_%s.png", kind, now.Format("20060102")))
	if err := os.WriteFile(path, png, 0644); err != nil {
		return errors.ExportWriteError(path, err)
	}

	formatter.PrintSuccess("Chart saved to %s", path)
	return nil
}

// Recurring renders the server-computed recurring payment summaries
func (s *AnalyticsService) Recurring(ctx context.Context) error {
	client.Init()

	recurring, err := api.GetRecurring(ctx)
	if err != nil {
		formatter.PrintError("Failed to fetch recurring payments: %v", err)
		return err
	}

	if len(recurring.Recurring) == 0 {
		formatter.PrintInfo("No recurring payment patterns detected")
		return nil
	}

	rows := make([][]string, 0, len(recurring.Recurring))
	for _, r := range recurring.Recurring {
		rows = append(rows, []string{
			r.Description,
			r.CategoryName,
			formatter.Amount(r.AverageAmount),
			fmt.Sprintf("every %d days", r.IntervalDays),
			r.NextExpected.Format("2006-01-02"),
		})
	}
	formatter.PrintTable([]string{"Description", "Category", "Average", "Interval", "Next expected"}, rows)

	fmt.Println()
	formatter.PrintInfo("Estimated monthly recurring spend: %s", formatter.Amount(recurring.MonthlyEstimate))
	return nil
}

// PaymentBreakdown renders the server-aggregated per-mode totals
func (s *AnalyticsService) PaymentBreakdown(ctx context.Context, period string) error {
	if !api.ValidBreakdownPeriod(period) {
		return errors.ValidationError("period", fmt.Sprintf("must be one of %v", api.BreakdownPeriods))
	}

	client.Init()

	breakdown, err := api.GetPaymentBreakdown(ctx, period)
	if err != nil {
		formatter.PrintError("Failed to fetch payment breakdown: %v", err)
		return err
	}

	rows := make([][]string, 0, len(breakdown.Totals))
	for _, t := range breakdown.Totals {
		rows = append(rows, []string{
			t.Mode.DisplayName(),
			formatter.Amount(t.Total),
			fmt.Sprintf("%d", t.Count),
		})
	}
	formatter.PrintTable([]string{"Mode", "Total", "Transactions"}, rows)
	return nil
}

func (s *AnalyticsService) printBreakdown(groups []analytics.CategoryGroup) {
	if len(groups) == 0 {
		formatter.PrintInfo("No expenses match the current filters")
		return
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		name := g.Name
		if g.Emoji != "" {
			name = g.Emoji + " " + name
		}
		rows = append(rows, []string{name, formatter.Amount(g.Total), fmt.Sprintf("%d", g.Count)})
	}
	formatter.PrintTable([]string{"Category", "Total", "Count"}, rows)
}

func (s *AnalyticsService) printTrend(buckets []analytics.DayBucket) {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{b.Day.Format("Mon 2006-01-02"), formatter.Amount(b.Total)})
	}
	formatter.PrintTable([]string{"Day", "Spent"}, rows)
}
