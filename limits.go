package finguide

import (
	"fmt"
	"strings"
)

// TaxYear is the year the limits below apply to. They change every year,
// check irs.gov.
const TaxYear = 2025

// ContributionLimit is the yearly contribution limit of an account.
type ContributionLimit struct {
	Account    string  `json:"account"`
	Standard   float64 `json:"standard"`
	CatchUp    float64 `json:"catchUp"` // limit including catch-up contributions
	CatchUpAge int     `json:"catchUpAge"`
}

// ContributionLimits of TaxYear.
var ContributionLimits = []ContributionLimit{
	{Account: "401k", Standard: 23_500, CatchUp: 31_000, CatchUpAge: 50},
	{Account: "IRA", Standard: 7_000, CatchUp: 8_000, CatchUpAge: 50},
	{Account: "HSA (individual)", Standard: 4_300, CatchUp: 5_300, CatchUpAge: 55},
	{Account: "HSA (family)", Standard: 8_550, CatchUp: 9_550, CatchUpAge: 55},
}

// Limit returns the contribution limit at 'age'.
func (l ContributionLimit) Limit(age int) float64 {
	if age >= l.CatchUpAge {
		return l.CatchUp
	}
	return l.Standard
}

// RothIncomeLimit is the income range over which the Roth IRA contribution
// is phased out.
type RothIncomeLimit struct {
	Filing        string  `json:"filing"`
	PhaseOutStart float64 `json:"phaseOutStart"`
	PhaseOutEnd   float64 `json:"phaseOutEnd"`
}

// RothIncomeLimits of TaxYear.
var RothIncomeLimits = []RothIncomeLimit{
	{Filing: "single", PhaseOutStart: 150_000, PhaseOutEnd: 165_000},
	{Filing: "married filing jointly", PhaseOutStart: 236_000, PhaseOutEnd: 246_000},
}

// AllowedFraction returns the fraction of the full Roth IRA contribution
// allowed at a modified adjusted gross income: 1 below the phase-out range,
// 0 above it and linearly reduced in between.
func (l RothIncomeLimit) AllowedFraction(income float64) float64 {
	switch {
	case income <= l.PhaseOutStart:
		return 1
	case income >= l.PhaseOutEnd:
		return 0
	default:
		return (l.PhaseOutEnd - income) / (l.PhaseOutEnd - l.PhaseOutStart)
	}
}

// Fund is a low-cost index fund used as an example in the guide.
type Fund struct {
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	ExpenseRatio float64 `json:"expenseRatio"`
}

// FundExamples are broad market index funds.
var FundExamples = []Fund{
	{Ticker: "VT", Name: "Vanguard Total World Stock ETF", ExpenseRatio: 0.0007},
	{Ticker: "VTI", Name: "Vanguard Total Stock Market ETF", ExpenseRatio: 0.0003},
	{Ticker: "VXUS", Name: "Vanguard Total International Stock ETF", ExpenseRatio: 0.0007},
	{Ticker: "BND", Name: "Vanguard Total Bond Market ETF", ExpenseRatio: 0.0003},
}

// FundByTicker looks up an example fund, case insensitive.
func FundByTicker(ticker string) (Fund, error) {
	for _, f := range FundExamples {
		if strings.EqualFold(f.Ticker, ticker) {
			return f, nil
		}
	}
	return Fund{}, fmt.Errorf("unknown fund %q", ticker)
}
