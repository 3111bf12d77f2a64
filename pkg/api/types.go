package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is the fixed enumeration of ways an expense was paid
type PaymentMode string

const (
	PaymentCash         PaymentMode = "cash"
	PaymentCard         PaymentMode = "card"
	PaymentWallet       PaymentMode = "wallet"
	PaymentBankTransfer PaymentMode = "bank_transfer"
	PaymentUPI          PaymentMode = "upi"
)

// PaymentModes lists every payment mode in display order
func PaymentModes() []PaymentMode {
	return []PaymentMode{PaymentCash, PaymentCard, PaymentWallet, PaymentBankTransfer, PaymentUPI}
}

// ValidPaymentMode reports whether mode names a known payment mode
func ValidPaymentMode(mode string) bool {
	switch PaymentMode(mode) {
	case PaymentCash, PaymentCard, PaymentWallet, PaymentBankTransfer, PaymentUPI:
		return true
	}
	return false
}

// DisplayName returns the human-readable name of the payment mode
func (m PaymentMode) DisplayName() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentCard:
		return "Card"
	case PaymentWallet:
		return "Wallet"
	case PaymentBankTransfer:
		return "Bank Transfer"
	case PaymentUPI:
		return "UPI"
	default:
		return string(m)
	}
}

// Category is denormalized onto every expense record; the client never
// resolves it against a category table.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Emoji string `json:"emoji,omitempty"`
}

// Expense is a single logged transaction. Read-only on this side: the
// analytics engine treats fetched records as a disposable projection.
type Expense struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	PaymentMode PaymentMode     `json:"payment_mode"`
	Note        string          `json:"note,omitempty"`
	Date        time.Time       `json:"date"`
	Currency    string          `json:"currency"`
	Deleted     bool            `json:"is_deleted,omitempty"`
}

type ExpenseListResponse struct {
	Expenses []Expense `json:"expenses"`
}

// PagedExpenses is one page of the cursor-paginated transaction list
type PagedExpenses struct {
	Expenses   []Expense `json:"expenses"`
	NextCursor string    `json:"next_cursor"`
	HasMore    bool      `json:"has_more"`
}

type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	PaymentMode PaymentMode     `json:"payment_mode"`
	Note        string          `json:"note,omitempty"`
	Date        time.Time       `json:"date"`
	Currency    string          `json:"currency"`
}

type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *Category        `json:"category,omitempty"`
	PaymentMode *PaymentMode     `json:"payment_mode,omitempty"`
	Note        *string          `json:"note,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
}

type ExpenseResponse struct {
	Expense Expense `json:"expense"`
}

// RecurringPayment is a server-computed periodic spending pattern. The
// client renders these; it never derives them.
type RecurringPayment struct {
	Description   string          `json:"description"`
	CategoryName  string          `json:"category_name"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	IntervalDays  int             `json:"interval_days"`
	Occurrences   int             `json:"occurrences"`
	LastPaid      time.Time       `json:"last_paid"`
	NextExpected  time.Time       `json:"next_expected"`
}

type RecurringResponse struct {
	Recurring       []RecurringPayment `json:"recurring"`
	MonthlyEstimate decimal.Decimal    `json:"monthly_estimate"`
}

// PaymentModeTotal is one row of the server-aggregated mode breakdown
type PaymentModeTotal struct {
	Mode  PaymentMode     `json:"mode"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type PaymentBreakdownResponse struct {
	Period string             `json:"period"`
	Totals []PaymentModeTotal `json:"totals"`
}

// BreakdownPeriods the server accepts for /payment-breakdown
var BreakdownPeriods = []string{"week", "month", "3month", "6month", "year"}

// ValidBreakdownPeriod reports whether period is server-accepted
func ValidBreakdownPeriod(period string) bool {
	for _, p := range BreakdownPeriods {
		if p == period {
			return true
		}
	}
	return false
}

// Auth and profile types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User User `json:"user"`
}

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	Email          string    `json:"email,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	FollowerCount  int       `json:"follower_count"`
	FollowingCount int       `json:"following_count"`
	ExpenseCount   int       `json:"expense_count"`
	IsPrivate      bool      `json:"is_private"`
	IsFollowing    bool      `json:"is_following"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProfileResponse struct {
	User User `json:"user"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

type FollowListResponse struct {
	Users      []User `json:"users"`
	TotalCount int    `json:"total_count"`
}

// ErrorResponse is the server's error body shape
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
