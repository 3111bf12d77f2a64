package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/cli/pkg/api"
)

// BreakdownLimit caps how many category groups the breakdown shows.
// Groups beyond it are dropped from the breakdown but still count
// toward the overall total.
const BreakdownLimit = 6

// fallbackPalette supplies colors for categories that carry none,
// cycled by first-seen insertion index.
var fallbackPalette = []string{
	"#6366f1", "#f59e0b", "#10b981", "#ef4444", "#8b5cf6", "#06b6d4",
}

// CategoryGroup is one slice of the category breakdown
type CategoryGroup struct {
	Name  string
	Color string
	Emoji string
	Total decimal.Decimal
	Count int
}

// DayBucket is one calendar day's summed spending
type DayBucket struct {
	Day   time.Time
	Total decimal.Decimal
}

// Statistics are the derived values the analytics view renders
type Statistics struct {
	Total       decimal.Decimal
	Mean        decimal.Decimal
	Max         decimal.Decimal
	Count       int
	WeeklyTrend []DayBucket
	Breakdown   []CategoryGroup
}

// Compute derives statistics from an already-filtered subset. An empty
// subset yields all-zero statistics.
func Compute(filtered []api.Expense, now time.Time) Statistics {
	stats := Statistics{
		Total: decimal.Zero,
		Mean:  decimal.Zero,
		Max:   decimal.Zero,
		Count: len(filtered),
	}

	for _, e := range filtered {
		stats.Total = stats.Total.Add(e.Amount)
		if e.Amount.GreaterThan(stats.Max) {
			stats.Max = e.Amount
		}
	}
	if stats.Count > 0 {
		stats.Mean = stats.Total.Div(decimal.NewFromInt(int64(stats.Count)))
	}

	stats.WeeklyTrend = DailyTotals(filtered, now, 7)
	stats.Breakdown = CategoryBreakdown(filtered)

	return stats
}

// DailyTotals buckets amounts by local calendar day over the trailing
// window ending today: exactly days entries, chronological, the last
// being today. Membership is calendar-day equality in local time.
func DailyTotals(expenses []api.Expense, now time.Time, days int) []DayBucket {
	buckets := make([]DayBucket, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, i-days+1)
		buckets[i] = DayBucket{
			Day:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
			Total: decimal.Zero,
		}
	}

	for _, e := range expenses {
		for i := range buckets {
			if sameDay(e.Date, buckets[i].Day) {
				buckets[i].Total = buckets[i].Total.Add(e.Amount)
				break
			}
		}
	}

	return buckets
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// CategoryBreakdown groups expenses by category name, sums each group,
// fills in a palette color where the category has none, sorts by
// descending total (stable), and truncates to BreakdownLimit groups.
func CategoryBreakdown(expenses []api.Expense) []CategoryGroup {
	index := make(map[string]int)
	groups := make([]CategoryGroup, 0)

	for _, e := range expenses {
		i, ok := index[e.Category.Name]
		if !ok {
			color := e.Category.Color
			if color == "" {
				color = fallbackPalette[len(groups)%len(fallbackPalette)]
			}
			i = len(groups)
			index[e.Category.Name] = i
			groups = append(groups, CategoryGroup{
				Name:  e.Category.Name,
				Color: color,
				Emoji: e.Category.Emoji,
				Total: decimal.Zero,
			})
		}
		groups[i].Total = groups[i].Total.Add(e.Amount)
		groups[i].Count++
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Total.GreaterThan(groups[b].Total)
	})

	if len(groups) > BreakdownLimit {
		groups = groups[:BreakdownLimit]
	}

	return groups
}
