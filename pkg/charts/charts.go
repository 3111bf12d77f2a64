// Package charts renders the analytics view's visuals (7-day trend,
// category breakdown) to PNG bytes for saving alongside exports.
package charts

import (
	"bytes"
	"fmt"

	"github.com/spendwise/cli/pkg/analytics"
	"github.com/wcharczuk/go-chart/v2"
)

// TrendChart renders the daily trend buckets as a bar chart
func TrendChart(buckets []analytics.DayBucket, currencySymbol string) ([]byte, error) {
	if len(buckets) == 0 {
		return nil, fmt.Errorf("no trend data to chart")
	}

	bars := make([]chart.Value, len(buckets))
	for i, b := range buckets {
		total, _ := b.Total.Float64()
		bars[i] = chart.Value{
			Label: b.Day.Format("Mon 02"),
			Value: total,
		}
	}

	graph := chart.BarChart{
		Title:    "Daily spending",
		Width:    900,
		Height:   500,
		BarWidth: 60,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 40, Right: 40, Bottom: 40},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%s%.0f", currencySymbol, v.(float64))
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}

	return buffer.Bytes(), nil
}

// BreakdownChart renders the category breakdown as a pie chart
func BreakdownChart(groups []analytics.CategoryGroup, currencySymbol string) ([]byte, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("no breakdown data to chart")
	}

	values := make([]chart.Value, 0, len(groups))
	for _, g := range groups {
		total, _ := g.Total.Float64()
		if total <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s%.0f", g.Name, currencySymbol, total),
			Value: total,
		})
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no breakdown data to chart")
	}

	pie := chart.PieChart{
		Width:  700,
		Height: 700,
		Values: values,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 40, Right: 40, Bottom: 40},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render breakdown chart: %w", err)
	}

	return buffer.Bytes(), nil
}
