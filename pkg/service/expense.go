package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/cli/pkg/api"
	"github.com/spendwise/cli/pkg/client"
	"github.com/spendwise/cli/pkg/config"
	"github.com/spendwise/cli/pkg/errors"
	"github.com/spendwise/cli/pkg/formatter"
	"github.com/spendwise/cli/pkg/prompter"
)

const defaultPageSize = 25

type ExpenseService struct{}

// NewExpenseService creates a new expense service
func NewExpenseService() *ExpenseService {
	return &ExpenseService{}
}

// List prints the transaction list, following the cursor until pages
// run out or maxPages is hit
func (s *ExpenseService) List(ctx context.Context, maxPages int) error {
	client.Init()

	cursor := ""
	total := 0
	for page := 0; maxPages <= 0 || page < maxPages; page++ {
		resp, err := api.GetExpensesPaged(ctx, cursor, defaultPageSize)
		if err != nil {
			formatter.PrintError("Failed to fetch expenses: %v", err)
			return err
		}

		s.printExpenses(resp.Expenses)
		total += len(resp.Expenses)

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	fmt.Println()
	formatter.PrintInfo("%d transactions", total)
	return nil
}

// Add logs a new expense. Missing fields are prompted for; validation
// happens before any request goes out.
func (s *ExpenseService) Add(ctx context.Context, amountStr, category, mode, note, dateStr string) error {
	req := api.CreateExpenseRequest{
		Currency: config.GetString("api.currency"),
	}

	var err error
	if amountStr == "" {
		req.Amount, err = prompter.PromptAmount("Amount: ")
		if err != nil {
			return err
		}
	} else {
		req.Amount, err = decimal.NewFromString(amountStr)
		if err != nil || req.Amount.IsNegative() {
			return errors.InvalidAmountError(amountStr)
		}
	}

	if category == "" {
		category, err = prompter.PromptString("Category: ")
		if err != nil {
			return err
		}
	}
	if category == "" {
		return errors.ValidationError("category", "required")
	}
	req.Category = api.Category{Name: category}

	if mode == "" {
		modes := api.PaymentModes()
		names := make([]string, len(modes))
		for i, m := range modes {
			names[i] = m.DisplayName()
		}
		idx, err := prompter.PromptSelect("Payment mode:", names)
		if err != nil {
			return err
		}
		mode = string(modes[idx])
	}
	if !api.ValidPaymentMode(mode) {
		return errors.ValidationError("mode", fmt.Sprintf("unknown payment mode %q", mode))
	}
	req.PaymentMode = api.PaymentMode(mode)

	req.Note = note

	if dateStr == "" {
		req.Date, err = prompter.PromptDate("Date (YYYY-MM-DD, blank for today): ")
		if err != nil {
			return err
		}
	} else {
		req.Date, err = time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return errors.InvalidDateError(dateStr)
		}
	}

	client.Init()

	expense, err := api.CreateExpense(ctx, req)
	if err != nil {
		formatter.PrintError("Failed to add expense: %v", err)
		return err
	}

	formatter.PrintSuccess("Logged %s on %s (%s)",
		formatter.Amount(expense.Amount), expense.Category.Name, expense.PaymentMode.DisplayName())
	return nil
}

// Edit updates fields of an existing expense. Only provided flags are
// sent; everything else stays untouched.
func (s *ExpenseService) Edit(ctx context.Context, id, amountStr, category, mode, note, dateStr string) error {
	if id == "" {
		return errors.ValidationError("id", "required")
	}

	var req api.UpdateExpenseRequest

	if amountStr != "" {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil || amount.IsNegative() {
			return errors.InvalidAmountError(amountStr)
		}
		req.Amount = &amount
	}
	if category != "" {
		req.Category = &api.Category{Name: category}
	}
	if mode != "" {
		if !api.ValidPaymentMode(mode) {
			return errors.ValidationError("mode", fmt.Sprintf("unknown payment mode %q", mode))
		}
		m := api.PaymentMode(mode)
		req.PaymentMode = &m
	}
	if note != "" {
		req.Note = &note
	}
	if dateStr != "" {
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return errors.InvalidDateError(dateStr)
		}
		req.Date = &date
	}

	if req.Amount == nil && req.Category == nil && req.PaymentMode == nil && req.Note == nil && req.Date == nil {
		return errors.ValidationError("fields", "nothing to update")
	}

	client.Init()

	expense, err := api.UpdateExpense(ctx, id, req)
	if err != nil {
		if api.IsNotFound(err) {
			formatter.PrintError("Expense not found: %s", id)
		} else {
			formatter.PrintError("Failed to update expense: %v", err)
		}
		return err
	}

	formatter.PrintSuccess("Updated expense %s", expense.ID)
	return nil
}

// Delete removes an expense, asking for confirmation unless forced
func (s *ExpenseService) Delete(ctx context.Context, id string, force bool) error {
	if id == "" {
		return errors.ValidationError("id", "required")
	}

	if !force {
		ok, err := prompter.PromptConfirm(fmt.Sprintf("Delete expense %s?", id))
		if err != nil {
			return err
		}
		if !ok {
			formatter.PrintInfo("Cancelled")
			return nil
		}
	}

	client.Init()

	if err := api.DeleteExpense(ctx, id); err != nil {
		formatter.PrintError("Failed to delete expense: %v", err)
		return err
	}

	formatter.PrintSuccess("Deleted expense %s", id)
	return nil
}

// Export downloads the server-generated spreadsheet for the window
// into the configured download directory
func (s *ExpenseService) Export(ctx context.Context, startStr, endStr string) error {
	now := time.Now()
	start := now.AddDate(0, 0, -windowDays)
	end := now

	var err error
	if startStr != "" {
		start, err = time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			return errors.InvalidDateError(startStr)
		}
	}
	if endStr != "" {
		end, err = time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			return errors.InvalidDateError(endStr)
		}
	}
	if end.Before(start) {
		return errors.ValidationError("range", "end date is before start date")
	}

	client.Init()

	// The server stamps rows in the caller's local time
	_, tzOffsetSeconds := now.Zone()

	path, err := api.ExportExcel(ctx, start, end, tzOffsetSeconds/60, config.GetString("output.download_dir"))
	if err != nil {
		formatter.PrintError("Export failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Exported to %s", path)
	return nil
}

func (s *ExpenseService) printExpenses(expenses []api.Expense) {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		note := e.Note
		if len(note) > 30 {
			note = note[:27] + "..."
		}
		rows = append(rows, []string{
			e.Date.Format("2006-01-02"),
			formatter.Amount(e.Amount),
			e.Category.Name,
			e.PaymentMode.DisplayName(),
			note,
		})
	}
	formatter.PrintTable([]string{"Date", "Amount", "Category", "Mode", "Note"}, rows)
}
