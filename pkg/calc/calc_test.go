package calc

import (
	"math"
	"testing"
)

func TestEvaluateBasicArithmetic(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-4-3", 3},
		{"5/2", 2.5},
		{"100/4/5", 5},
		{"2*(3+4)-5", 9},
	}

	for _, tc := range cases {
		got, err := Evaluate(tc.expr)
		if err != nil {
			t.Errorf("Evaluate(%q) returned error: %v", tc.expr, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestEvaluateDisplaySymbols(t *testing.T) {
	got, err := Evaluate("120×2÷3")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if got != 80 {
		t.Errorf("Evaluate(120×2÷3) = %v, want 80", got)
	}
}

func TestEvaluatePercent(t *testing.T) {
	got, err := Evaluate("50%")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if got != 0.5 {
		t.Errorf("Evaluate(50%%) = %v, want 0.5", got)
	}

	got, err = Evaluate("200*10%")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if got != 20 {
		t.Errorf("Evaluate(200*10%%) = %v, want 20", got)
	}
}

func TestEvaluateDecimals(t *testing.T) {
	got, err := Evaluate("1.5+2.25")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if got != 3.75 {
		t.Errorf("Evaluate(1.5+2.25) = %v, want 3.75", got)
	}
}

func TestEvaluateRejectsJunk(t *testing.T) {
	for _, expr := range []string{"", "   ", "2+abc", "os.Exit(1)", "1;2", `"hi"`} {
		if _, err := Evaluate(expr); err == nil {
			t.Errorf("Evaluate(%q) should have failed", expr)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{14, "14"},
		{2.5, "2.5"},
		{0, "0"},
		{-3, "-3"},
	}

	for _, tc := range cases {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
