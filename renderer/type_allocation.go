package renderer

import "github.com/etnz/finguide"

// Allocation is the suggested allocation report.
type Allocation struct {
	Age           float64          `json:"age"`
	RiskTolerance float64          `json:"riskTolerance"`
	Slices        []Slice          `json:"slices"`
	Stocks        finguide.Percent `json:"stocks"`
	Bonds         finguide.Percent `json:"bonds"`
}

// Slice is a part of the portfolio and an example fund to hold it.
type Slice struct {
	Name   string           `json:"name"`
	Weight finguide.Percent `json:"weight"`
	Fund   finguide.Fund    `json:"fund"`
}

// NewAllocation creates the report of a suggested allocation.
func NewAllocation(a finguide.Allocation, age, riskTolerance float64) *Allocation {
	example := func(ticker string) finguide.Fund {
		f, _ := finguide.FundByTicker(ticker)
		return f
	}
	return &Allocation{
		Age:           age,
		RiskTolerance: riskTolerance,
		Stocks:        a.Stocks,
		Bonds:         a.Bonds,
		Slices: []Slice{
			{Name: "US stocks", Weight: a.USStocks, Fund: example("VTI")},
			{Name: "International stocks", Weight: a.IntlStocks, Fund: example("VXUS")},
			{Name: "Bonds", Weight: a.Bonds, Fund: example("BND")},
		},
	}
}
