// Package finguide provides the financial formulas behind the interactive
// calculators of the guide. Every function is pure: it allocates its own
// working state, performs no I/O and returns the same result for the same
// inputs, so it is safe to call from any number of goroutines.
//
// The calculators are:
//   - CompoundGrowth: monthly compounding with a fixed monthly contribution,
//     reported once per year.
//   - FeeImpact: two yearly trajectories that only differ by their expense
//     ratio.
//   - EmergencyFundTiers: split months of expenses into checking, high-yield
//     savings and T-Bills/CDs, with the blended yield of the split.
//   - DebtPayoff: month by month amortization of several debts with the
//     avalanche or snowball method.
//   - SuggestAllocation: stocks/bonds and US/international split from age
//     and risk tolerance.
//   - RothVsTraditional: after-tax value of the same yearly contribution in a
//     Roth and in a Traditional account.
//
// Rates are always fractions (7% is 0.07). Inputs are not validated: the
// formulas are total over their numeric domain and degenerate inputs produce
// whatever the arithmetic produces (NaN, Inf, negative amounts). Callers that
// want to reject bad input do it upfront, see ValidateDebts.
//
// This package is the foundation of the `guide` command-line tool and of the
// assistant in package agent.
package finguide
