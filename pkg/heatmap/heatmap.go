// Package heatmap renders a contribution-graph style view of daily
// spending intensity in the terminal: weekday rows, one column per
// week, cell shade by quartile of the nonzero daily totals.
package heatmap

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spendwise/cli/pkg/analytics"
)

const cell = "■ "

var shades = []*color.Color{
	color.New(color.FgHiBlack),
	color.New(color.FgGreen),
	color.New(color.FgHiGreen),
	color.New(color.FgYellow),
	color.New(color.FgHiRed),
}

// Render draws the daily totals as a weekday-by-week grid. Buckets are
// expected chronological, as produced by analytics.DailyTotals.
func Render(buckets []analytics.DayBucket) string {
	if len(buckets) == 0 {
		return ""
	}

	thresholds := quartiles(buckets)

	// Pad the first week so columns align on Sunday
	lead := int(buckets[0].Day.Weekday())
	weeks := (lead + len(buckets) + 6) / 7

	var sb strings.Builder
	sb.WriteString(monthHeader(buckets, lead, weeks))

	dayNames := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for row := 0; row < 7; row++ {
		sb.WriteString(fmt.Sprintf("%-4s", dayNames[row]))
		for week := 0; week < weeks; week++ {
			i := week*7 + row - lead
			if i < 0 || i >= len(buckets) {
				sb.WriteString("  ")
				continue
			}
			sb.WriteString(shades[level(buckets[i].Total, thresholds)].Sprint(cell))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("    less ")
	for _, shade := range shades {
		sb.WriteString(shade.Sprint(cell))
	}
	sb.WriteString("more\n")

	return sb.String()
}

// quartiles returns the 25/50/75 percentile cuts of the nonzero totals
func quartiles(buckets []analytics.DayBucket) []decimal.Decimal {
	nonzero := make([]decimal.Decimal, 0, len(buckets))
	for _, b := range buckets {
		if b.Total.IsPositive() {
			nonzero = append(nonzero, b.Total)
		}
	}
	if len(nonzero) == 0 {
		zero := decimal.Zero
		return []decimal.Decimal{zero, zero, zero}
	}
	sort.Slice(nonzero, func(a, b int) bool { return nonzero[a].LessThan(nonzero[b]) })

	return []decimal.Decimal{
		nonzero[len(nonzero)/4],
		nonzero[len(nonzero)/2],
		nonzero[len(nonzero)*3/4],
	}
}

func level(total decimal.Decimal, thresholds []decimal.Decimal) int {
	if !total.IsPositive() {
		return 0
	}
	for i := len(thresholds) - 1; i >= 0; i-- {
		if total.GreaterThan(thresholds[i]) {
			return i + 2
		}
	}
	return 1
}

// monthHeader labels the column where each month starts
func monthHeader(buckets []analytics.DayBucket, lead, weeks int) string {
	header := make([]string, weeks)
	for i := range header {
		header[i] = "  "
	}

	var lastMonth time.Month
	for i, b := range buckets {
		if i == 0 || b.Day.Month() != lastMonth {
			week := (i + lead) / 7
			header[week] = b.Day.Format("Jan")[:2]
		}
		lastMonth = b.Day.Month()
	}

	return "    " + strings.Join(header, "") + "\n"
}
