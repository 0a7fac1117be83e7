package renderer

import (
	"math"

	"github.com/etnz/finguide"
)

// Roth is the Roth versus Traditional report.
type Roth struct {
	Contribution     finguide.Money   `json:"annualContribution"`
	CurrentTax       finguide.Percent `json:"currentTaxRate"`
	FutureTax        finguide.Percent `json:"futureTaxRate"`
	Return           finguide.Percent `json:"annualReturn"`
	Years            int              `json:"years"`
	RothFinal        finguide.Money   `json:"rothFinal"`
	TraditionalFinal finguide.Money   `json:"traditionalFinal"`
	Advantage        finguide.Money   `json:"advantage"` // of the winner
	// Winner is "Roth", "Traditional" or "Neither" on a tie.
	Winner string `json:"winner"`
}

// NewRoth creates the report of a Roth versus Traditional comparison.
func NewRoth(r finguide.RothComparison, annualContribution, currentTaxRate, futureTaxRate, annualReturn float64, years int, currency string) *Roth {
	winner := "Neither"
	switch {
	case r.RothAdvantage > 0:
		winner = "Roth"
	case r.RothAdvantage < 0:
		winner = "Traditional"
	}
	return &Roth{
		Contribution:     finguide.M(annualContribution, currency),
		CurrentTax:       finguide.Percent(currentTaxRate * 100),
		FutureTax:        finguide.Percent(futureTaxRate * 100),
		Return:           finguide.Percent(annualReturn * 100),
		Years:            years,
		RothFinal:        finguide.M(r.RothFinal, currency),
		TraditionalFinal: finguide.M(r.TraditionalFinal, currency),
		Advantage:        finguide.M(math.Abs(r.RothAdvantage), currency),
		Winner:           winner,
	}
}
