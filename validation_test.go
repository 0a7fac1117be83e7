package finguide

import (
	"strings"
	"testing"
)

func TestValidateDebts(t *testing.T) {
	tests := []struct {
		name    string
		debts   []Debt
		wantErr []string
	}{
		{
			name:  "valid",
			debts: []Debt{{Name: "Card", Balance: 1000, Rate: 0.2, Minimum: 30}},
		},
		{
			name:    "empty",
			debts:   nil,
			wantErr: []string{"no debt"},
		},
		{
			name: "duplicate and unnamed",
			debts: []Debt{
				{Name: "Card", Balance: 1000, Rate: 0.2, Minimum: 30},
				{Name: "Card", Balance: 500, Rate: 0.1, Minimum: 20},
				{Balance: 500, Rate: 0.1, Minimum: 20},
			},
			wantErr: []string{`"Card" is declared twice`, "#3 has no name"},
		},
		{
			name:    "bad amounts",
			debts:   []Debt{{Name: "Car", Balance: 0, Rate: 18, Minimum: -1}},
			wantErr: []string{"balance must be positive", "above 100%", "minimum payment must be positive"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDebts(tc.debts)
			if len(tc.wantErr) == 0 {
				if err != nil {
					t.Fatalf("ValidateDebts() error = %v, want none", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateDebts() = nil, want errors %q", tc.wantErr)
			}
			for _, want := range tc.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("ValidateDebts() error %q does not mention %q", err, want)
				}
			}
		})
	}
}
