package api

import "testing"

func TestPaymentModeDisplayName(t *testing.T) {
	tests := []struct {
		mode     PaymentMode
		expected string
	}{
		{PaymentCash, "Cash"},
		{PaymentCard, "Card"},
		{PaymentWallet, "Wallet"},
		{PaymentBankTransfer, "Bank Transfer"},
		{PaymentUPI, "UPI"},
		{PaymentMode("cheque"), "cheque"},
	}

	for _, tt := range tests {
		if got := tt.mode.DisplayName(); got != tt.expected {
			t.Errorf("DisplayName(%s): got %q, want %q", tt.mode, got, tt.expected)
		}
	}
}

func TestValidPaymentMode(t *testing.T) {
	for _, m := range PaymentModes() {
		if !ValidPaymentMode(string(m)) {
			t.Errorf("%q should be a valid payment mode", m)
		}
	}
	for _, invalid := range []string{"", "cheque", "CASH"} {
		if ValidPaymentMode(invalid) {
			t.Errorf("%q should not be a valid payment mode", invalid)
		}
	}
}
