package api

import (
	"context"

	json "github.com/json-iterator/go"
	"github.com/spendwise/cli/pkg/client"
	"github.com/spendwise/cli/pkg/logger"
)

// GetRecurring fetches the server-computed recurring-payment summaries
// and monthly estimate
func GetRecurring(ctx context.Context) (*RecurringResponse, error) {
	logger.Debug("Fetching recurring payments")

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		Get("/api/expenses/recurring")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var recResp RecurringResponse
	if err := json.Unmarshal(resp.Body(), &recResp); err != nil {
		return nil, err
	}

	return &recResp, nil
}

// GetPaymentBreakdown fetches pre-aggregated per-mode totals for a
// server-selected period (week, month, 3month, 6month, year)
func GetPaymentBreakdown(ctx context.Context, period string) (*PaymentBreakdownResponse, error) {
	logger.Debug("Fetching payment breakdown", "period", period)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetQueryParam("period", period).
		Get("/api/expenses/payment-breakdown")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var bdResp PaymentBreakdownResponse
	if err := json.Unmarshal(resp.Body(), &bdResp); err != nil {
		return nil, err
	}

	return &bdResp, nil
}
