package finguide

import (
	"encoding/json"
	"math"
	"testing"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m      Money
		str    string
		signed string
	}{
		{USD(1234.5), "$1,234.50", "+$1,234.50"},
		{USD(0.004), "$0.00", "+$0.00"},
		{USD(0), "$0.00", "-"},
		{USD(-20), "-$20.00", "-$20.00"},
		{USD(math.NaN()), "N/A", "N/A"},
		{USD(math.Inf(1)), "N/A", "N/A"},
	}
	for _, tc := range tests {
		if got := tc.m.String(); got != tc.str {
			t.Errorf("String() = %q, want %q", got, tc.str)
		}
		if got := tc.m.SignedString(); got != tc.signed {
			t.Errorf("SignedString() = %q, want %q", got, tc.signed)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	if got := USD(100.10).Add(USD(0.20)); !got.Equal(USD(100.30)) {
		t.Errorf("Add() = %v, want $100.30", got)
	}
	if got := USD(100).Sub(M(40, "")); !got.Equal(USD(60)) {
		t.Errorf("Sub() = %v, want $60.00", got)
	}
	if got := USD(100).Add(USD(math.NaN())); got.IsAvailable() {
		t.Errorf("Add(NaN) = %v, want N/A", got)
	}
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic when adding USD to EUR")
		}
	}()
	USD(1).Add(M(1.0, "EUR"))
}

func TestMoney_MarshalJSON(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(10.456), `{"currency":"USD","amount":10.46}`},
		{USD(math.NaN()), `{"currency":"USD","amount":null}`},
	}
	for _, tc := range tests {
		got, err := json.Marshal(tc.m)
		if err != nil {
			t.Fatalf("json.Marshal() error: %v", err)
		}
		if string(got) != tc.want {
			t.Errorf("json.Marshal() = %s, want %s", got, tc.want)
		}
	}
}
