package charts

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/cli/pkg/analytics"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestTrendChart(t *testing.T) {
	start := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.Local)
	buckets := make([]analytics.DayBucket, 7)
	for i := range buckets {
		buckets[i] = analytics.DayBucket{
			Day:   start.AddDate(0, 0, i),
			Total: decimal.NewFromInt(int64(50 + i*25)),
		}
	}

	png, err := TrendChart(buckets, "₹")
	if err != nil {
		t.Fatalf("TrendChart failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("TrendChart output is not a PNG")
	}
}

func TestTrendChartEmpty(t *testing.T) {
	if _, err := TrendChart(nil, "₹"); err == nil {
		t.Error("Expected error for empty trend data")
	}
}

func TestBreakdownChart(t *testing.T) {
	groups := []analytics.CategoryGroup{
		{Name: "Food", Total: decimal.NewFromInt(420), Count: 12},
		{Name: "Travel", Total: decimal.NewFromInt(180), Count: 4},
	}

	png, err := BreakdownChart(groups, "₹")
	if err != nil {
		t.Fatalf("BreakdownChart failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("BreakdownChart output is not a PNG")
	}
}

func TestBreakdownChartEmpty(t *testing.T) {
	if _, err := BreakdownChart(nil, "₹"); err == nil {
		t.Error("Expected error for empty breakdown data")
	}

	zeroed := []analytics.CategoryGroup{{Name: "Food", Total: decimal.Zero}}
	if _, err := BreakdownChart(zeroed, "₹"); err == nil {
		t.Error("Expected error when every group is zero")
	}
}
