package errors

import (
	"errors"
	"strings"
	"testing"
)

// TestNewCLIError creates and validates a CLI error
func TestNewCLIError(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewCLIError(ErrorTypeValidation, "Test error", cause)

	if err == nil {
		t.Fatal("NewCLIError returned nil")
	}

	if err.Type != ErrorTypeValidation {
		t.Errorf("Expected type %s, got %s", ErrorTypeValidation, err.Type)
	}

	if err.Message != "Test error" {
		t.Errorf("Expected message 'Test error', got '%s'", err.Message)
	}

	if err.Cause != cause {
		t.Error("Cause not set correctly")
	}
}

// TestWithSuggestion adds suggestion to error
func TestWithSuggestion(t *testing.T) {
	err := NewCLIError(ErrorTypeValidation, "Test", nil)
	suggestion := "Try something else"

	result := err.WithSuggestion(suggestion)

	if !result.HasSuggestion() {
		t.Error("HasSuggestion returned false")
	}

	if result.Suggestion != suggestion {
		t.Errorf("Expected suggestion '%s', got '%s'", suggestion, result.Suggestion)
	}
}

// TestNetworkError creates network error
func TestNetworkError(t *testing.T) {
	err := NetworkError("Connection failed")

	if err.Type != ErrorTypeNetwork {
		t.Errorf("Expected type %s, got %s", ErrorTypeNetwork, err.Type)
	}

	if !err.HasSuggestion() {
		t.Error("Expected suggestion for network error")
	}

	if !strings.Contains(err.Suggestion, "internet") {
		t.Error("Expected helpful suggestion about internet connection")
	}
}

// TestSessionExpiredError creates session expired error
func TestSessionExpiredError(t *testing.T) {
	err := SessionExpiredError()

	if err.Type != ErrorTypeSessionExpired {
		t.Errorf("Expected type %s, got %s", ErrorTypeSessionExpired, err.Type)
	}

	if !strings.Contains(err.Suggestion, "auth login") {
		t.Error("Expected login suggestion for expired session")
	}
}

// TestForbiddenError creates forbidden error
func TestForbiddenError(t *testing.T) {
	err := ForbiddenError()

	if err.Type != ErrorTypeForbidden {
		t.Errorf("Expected type %s, got %s", ErrorTypeForbidden, err.Type)
	}

	if !strings.Contains(err.Suggestion, "private") {
		t.Error("Expected private-profile hint for forbidden error")
	}
}

// TestInvalidAmountError creates invalid amount error
func TestInvalidAmountError(t *testing.T) {
	err := InvalidAmountError("abc")

	if err.Type != ErrorTypeInvalidAmount {
		t.Errorf("Expected type %s, got %s", ErrorTypeInvalidAmount, err.Type)
	}

	if !strings.Contains(err.Message, "abc") {
		t.Error("Expected input in message")
	}

	if !err.HasSuggestion() {
		t.Error("Expected suggestion for invalid amount")
	}
}

// TestInvalidDateError creates invalid date error
func TestInvalidDateError(t *testing.T) {
	err := InvalidDateError("31-12-2026")

	if err.Type != ErrorTypeInvalidDate {
		t.Errorf("Expected type %s, got %s", ErrorTypeInvalidDate, err.Type)
	}

	if !strings.Contains(err.Suggestion, "YYYY-MM-DD") {
		t.Error("Expected date format in suggestion")
	}
}

// TestExportWriteError creates export write error
func TestExportWriteError(t *testing.T) {
	cause := errors.New("permission denied")
	err := ExportWriteError("/tmp/expenses.xlsx", cause)

	if err.Type != ErrorTypeExportWrite {
		t.Errorf("Expected type %s, got %s", ErrorTypeExportWrite, err.Type)
	}

	if !strings.Contains(err.Message, "/tmp/expenses.xlsx") {
		t.Error("Expected path in message")
	}

	if err.Unwrap() != cause {
		t.Error("Expected cause to be preserved")
	}
}

// TestRateLimitError creates rate limit error
func TestRateLimitError(t *testing.T) {
	retryAfter := 60
	err := RateLimitError(retryAfter)

	if err.Type != ErrorTypeRateLimit {
		t.Errorf("Expected type %s, got %s", ErrorTypeRateLimit, err.Type)
	}

	if err.RetryAfter != retryAfter {
		t.Errorf("Expected RetryAfter %d, got %d", retryAfter, err.RetryAfter)
	}

	if !strings.Contains(err.Suggestion, "60") {
		t.Error("Expected retry time in suggestion")
	}
}

// TestNotFoundError creates not found error
func TestNotFoundError(t *testing.T) {
	err := NotFoundError("User", "john_doe")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("Expected type %s, got %s", ErrorTypeNotFound, err.Type)
	}

	if !strings.Contains(err.Message, "User") {
		t.Error("Expected resource type in message")
	}

	if !strings.Contains(err.Message, "john_doe") {
		t.Error("Expected identifier in message")
	}
}

// TestCategorizeError categorizes standard errors
func TestCategorizeError(t *testing.T) {
	testCases := []struct {
		input    error
		expected ErrorType
		name     string
	}{
		{errors.New("connection refused"), ErrorTypeNetwork, "connection refused"},
		{errors.New("timeout"), ErrorTypeTimeout, "timeout"},
		{errors.New("context deadline exceeded"), ErrorTypeTimeout, "context deadline"},
		{errors.New("session expired: run 'spendwise auth login'"), ErrorTypeSessionExpired, "session expired"},
		{errors.New("401 unauthorized"), ErrorTypeAuth, "401 error"},
		{errors.New("403 forbidden"), ErrorTypeForbidden, "403 error"},
		{errors.New("404 not found"), ErrorTypeNotFound, "404 error"},
		{errors.New("429 rate limit"), ErrorTypeRateLimit, "429 error"},
		{errors.New("500 server error"), ErrorTypeServer, "500 error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CategorizeError(tc.input)

			if err.Type != tc.expected {
				t.Errorf("Expected type %s, got %s", tc.expected, err.Type)
			}
		})
	}
}

// TestCategorizeError_PassThrough keeps an existing CLIError intact
func TestCategorizeError_PassThrough(t *testing.T) {
	original := InvalidAmountError("-5")
	err := CategorizeError(original)

	if err != original {
		t.Error("Expected CLIError to pass through unchanged")
	}
}

// TestFormatError formats error for display
func TestFormatError(t *testing.T) {
	err := SessionExpiredError()
	formatted := FormatError(err)

	if !strings.Contains(formatted, "Error") {
		t.Error("Expected 'Error' in formatted message")
	}

	if !strings.Contains(formatted, "session_expired") {
		t.Error("Expected error type in formatted message")
	}

	if !strings.Contains(formatted, "Suggestion") {
		t.Error("Expected suggestion in formatted message")
	}
}

// TestFormatError_Nil handles nil error
func TestFormatError_Nil(t *testing.T) {
	formatted := FormatError(nil)

	if formatted != "" {
		t.Errorf("Expected empty string for nil error, got '%s'", formatted)
	}
}

// TestUnwrap returns underlying error
func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewCLIError(ErrorTypeValidation, "Test", cause)

	if err.Unwrap() != cause {
		t.Error("Unwrap did not return the correct underlying error")
	}
}
