package renderer

import "github.com/etnz/finguide"

// Growth is the compound growth report.
type Growth struct {
	Principal    finguide.Money   `json:"principal"`
	Contribution finguide.Money   `json:"monthlyContribution"`
	Rate         finguide.Percent `json:"annualRate"`
	Years        int              `json:"years"`
	Balances     []GrowthBalance  `json:"balances"`
	// Final is the balance at the end of the last year.
	Final finguide.Money `json:"final"`
	// Contributed is the principal plus all monthly contributions.
	Contributed finguide.Money `json:"contributed"`
	// Earnings is what compounding added on top of Contributed.
	Earnings finguide.Money `json:"earnings"`
}

// GrowthBalance is a yearly balance.
type GrowthBalance struct {
	Year    int            `json:"year"`
	Balance finguide.Money `json:"balance"`
}

// NewGrowth creates the report of a compound growth series.
func NewGrowth(series []finguide.YearlyBalance, principal, monthlyContribution, annualRate float64, currency string) *Growth {
	years := max(len(series)-1, 0)
	g := &Growth{
		Principal:    finguide.M(principal, currency),
		Contribution: finguide.M(monthlyContribution, currency),
		Rate:         finguide.Percent(annualRate * 100),
		Years:        years,
		Balances:     make([]GrowthBalance, 0, len(series)),
		Final:        finguide.M(finguide.Final(series), currency),
		Contributed:  finguide.M(principal+monthlyContribution*12*float64(years), currency),
	}
	g.Earnings = g.Final.Sub(g.Contributed)
	for _, b := range series {
		g.Balances = append(g.Balances, GrowthBalance{Year: b.Year, Balance: finguide.M(b.Balance, currency)})
	}
	return g
}
