package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spendwise/cli/pkg/analytics"
	"github.com/spendwise/cli/pkg/api"
	"github.com/spendwise/cli/pkg/config"
	"github.com/spendwise/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	filterRange      string
	filterCategories []string
	filterModes      []string
	filterMin        string
	filterMax        string
	heatmapDays      int
	chartKind        string
	chartOut         string
	breakdownPeriod  string
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Spending analytics",
	Long:  "Filter and aggregate your expenses: summaries, trends, breakdowns.",
}

var analyticsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summary statistics for the filtered expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildFilter()
		if err != nil {
			return err
		}
		svc := service.NewAnalyticsService()
		return svc.Summary(cmd.Context(), filter)
	},
}

var analyticsTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Daily spending over the last 7 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildFilter()
		if err != nil {
			return err
		}
		svc := service.NewAnalyticsService()
		return svc.Trend(cmd.Context(), filter)
	},
}

var analyticsBreakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Top spending categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildFilter()
		if err != nil {
			return err
		}
		svc := service.NewAnalyticsService()
		return svc.Breakdown(cmd.Context(), filter)
	},
}

var analyticsHeatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Daily spending heatmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildFilter()
		if err != nil {
			return err
		}
		svc := service.NewAnalyticsService()
		return svc.Heatmap(cmd.Context(), filter, heatmapDays)
	},
}

var analyticsChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render a PNG chart of the trend or breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildFilter()
		if err != nil {
			return err
		}
		out := chartOut
		if out == "" {
			out = config.GetString("output.download_dir")
		}
		svc := service.NewAnalyticsService()
		return svc.Chart(cmd.Context(), filter, chartKind, out)
	},
}

var recurringCmd = &cobra.Command{
	Use:   "recurring",
	Short: "Recurring payment patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAnalyticsService()
		return svc.Recurring(cmd.Context())
	},
}

var breakdownCmd = &cobra.Command{
	Use:   "payment-breakdown",
	Short: "Per-payment-mode totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAnalyticsService()
		return svc.PaymentBreakdown(cmd.Context(), breakdownPeriod)
	},
}

// buildFilter turns the filter flags into engine filter state
func buildFilter() (*analytics.Filter, error) {
	filter := analytics.NewFilter()

	if !analytics.ValidDateRange(filterRange) {
		return nil, fmt.Errorf("invalid --range %q (all, week, month, year)", filterRange)
	}
	filter.Range = analytics.DateRange(filterRange)

	for _, name := range filterCategories {
		filter.Categories[name] = true
	}

	for _, mode := range filterModes {
		if !api.ValidPaymentMode(mode) {
			return nil, fmt.Errorf("invalid --mode %q (cash, card, wallet, bank_transfer, upi)", mode)
		}
		filter.Modes[api.PaymentMode(mode)] = true
	}

	if filterMin != "" {
		min, err := decimal.NewFromString(filterMin)
		if err != nil {
			return nil, fmt.Errorf("invalid --min %q", filterMin)
		}
		filter.MinAmount = &min
	}
	if filterMax != "" {
		max, err := decimal.NewFromString(filterMax)
		if err != nil {
			return nil, fmt.Errorf("invalid --max %q", filterMax)
		}
		filter.MaxAmount = &max
	}

	return filter, nil
}

func init() {
	for _, c := range []*cobra.Command{analyticsSummaryCmd, analyticsTrendCmd, analyticsBreakdownCmd, analyticsHeatmapCmd, analyticsChartCmd} {
		c.Flags().StringVar(&filterRange, "range", "all", "Date range: all, week, month, year")
		c.Flags().StringSliceVar(&filterCategories, "category", nil, "Category filter (repeatable)")
		c.Flags().StringSliceVar(&filterModes, "mode", nil, "Payment mode filter (repeatable)")
		c.Flags().StringVar(&filterMin, "min", "", "Minimum amount (inclusive)")
		c.Flags().StringVar(&filterMax, "max", "", "Maximum amount (inclusive)")
	}

	analyticsHeatmapCmd.Flags().IntVar(&heatmapDays, "days", 182, "Days of history to draw")
	analyticsChartCmd.Flags().StringVar(&chartKind, "kind", "trend", "Chart kind: trend, breakdown")
	analyticsChartCmd.Flags().StringVar(&chartOut, "out", "", "Output directory (default: download dir)")

	breakdownCmd.Flags().StringVar(&breakdownPeriod, "period", "month", "Period: week, month, 3month, 6month, year")

	analyticsCmd.AddCommand(analyticsSummaryCmd)
	analyticsCmd.AddCommand(analyticsTrendCmd)
	analyticsCmd.AddCommand(analyticsBreakdownCmd)
	analyticsCmd.AddCommand(analyticsHeatmapCmd)
	analyticsCmd.AddCommand(analyticsChartCmd)
}
