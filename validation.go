package finguide

import (
	"errors"
	"fmt"
)

// ValidateDebts checks debts before a payoff simulation and returns an error
// with all validation failures.
//
// SimulateDebtPayoff itself accepts anything; this is for callers taking
// debts from users.
func ValidateDebts(debts []Debt) error {
	var errs []error
	if len(debts) == 0 {
		errs = append(errs, errors.New("no debt to pay off"))
	}
	names := make(map[string]bool)
	for i, d := range debts {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("debt #%d has no name", i+1))
		} else if names[d.Name] {
			errs = append(errs, fmt.Errorf("debt %q is declared twice", d.Name))
		}
		names[d.Name] = true
		if d.Balance <= 0 {
			errs = append(errs, fmt.Errorf("debt %q: balance must be positive, got %v", d.Name, d.Balance))
		}
		if d.Rate < 0 {
			errs = append(errs, fmt.Errorf("debt %q: rate must not be negative, got %v", d.Name, d.Rate))
		}
		if d.Rate > 1 {
			errs = append(errs, fmt.Errorf("debt %q: rate %v is above 100%%, rates are fractions (18%% is 0.18)", d.Name, d.Rate))
		}
		if d.Minimum <= 0 {
			errs = append(errs, fmt.Errorf("debt %q: minimum payment must be positive, got %v", d.Name, d.Minimum))
		}
	}
	return errors.Join(errs...)
}
