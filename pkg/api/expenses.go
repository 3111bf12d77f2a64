package api

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	json "github.com/json-iterator/go"
	"github.com/spendwise/cli/pkg/client"
	"github.com/spendwise/cli/pkg/logger"
)

const dateParamLayout = "2006-01-02"

// GetExpenseRange fetches every expense between start and end in one
// request. The analytics flow asks for the trailing 365 days rather
// than issuing one request per day. Soft-deleted records are dropped
// here so nothing downstream has to think about them.
func GetExpenseRange(ctx context.Context, start, end time.Time) ([]Expense, error) {
	logger.Debug("Fetching expense range", "start", start.Format(dateParamLayout), "end", end.Format(dateParamLayout))

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"startDate": start.Format(dateParamLayout),
			"endDate":   end.Format(dateParamLayout),
		}).
		Get("/api/expenses/range")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var listResp ExpenseListResponse
	if err := json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, err
	}

	expenses := make([]Expense, 0, len(listResp.Expenses))
	for _, e := range listResp.Expenses {
		if e.Deleted {
			continue
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

// GetExpensesPaged fetches one page of the transaction list. An empty
// cursor means the first page.
func GetExpensesPaged(ctx context.Context, cursor string, limit int) (*PagedExpenses, error) {
	logger.Debug("Fetching expense page", "cursor", cursor, "limit", limit)

	req := client.GetClient().
		R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit))
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}

	resp, err := req.Get("/api/expenses/paged")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var page PagedExpenses
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// CreateExpense logs a new expense
func CreateExpense(ctx context.Context, req CreateExpenseRequest) (*Expense, error) {
	logger.Debug("Creating expense", "category", req.Category.Name, "mode", req.PaymentMode)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/expenses")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var expResp ExpenseResponse
	if err := json.Unmarshal(resp.Body(), &expResp); err != nil {
		return nil, err
	}

	return &expResp.Expense, nil
}

// UpdateExpense edits an existing expense
func UpdateExpense(ctx context.Context, id string, req UpdateExpenseRequest) (*Expense, error) {
	logger.Debug("Updating expense", "id", id)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Put("/api/expenses/" + id)

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var expResp ExpenseResponse
	if err := json.Unmarshal(resp.Body(), &expResp); err != nil {
		return nil, err
	}

	return &expResp.Expense, nil
}

// DeleteExpense soft-deletes an expense
func DeleteExpense(ctx context.Context, id string) error {
	logger.Debug("Deleting expense", "id", id)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		Delete("/api/expenses/" + id)

	return CheckResponse(resp, err)
}

// ExportExcel streams the server-generated spreadsheet for the window
// into destDir and returns the written file path. The bytes are opaque
// to the client.
func ExportExcel(ctx context.Context, start, end time.Time, tzOffsetMinutes int, destDir string) (string, error) {
	filename := fmt.Sprintf("expenses_%s_%s.xlsx", start.Format(dateParamLayout), end.Format(dateParamLayout))
	destPath := filepath.Join(destDir, filename)

	logger.Debug("Exporting expenses", "dest", destPath)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"startDate":       start.Format(dateParamLayout),
			"endDate":         end.Format(dateParamLayout),
			"tzOffsetMinutes": strconv.Itoa(tzOffsetMinutes),
		}).
		SetOutput(destPath).
		Get("/api/expenses/export/excel")

	if err := CheckResponse(resp, err); err != nil {
		return "", err
	}

	return destPath, nil
}
