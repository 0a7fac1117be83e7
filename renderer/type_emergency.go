package renderer

import "github.com/etnz/finguide"

// Emergency is the emergency fund report.
type Emergency struct {
	MonthlyExpenses finguide.Money   `json:"monthlyExpenses"`
	Months          float64          `json:"months"`
	Tiers           []EmergencyTier  `json:"tiers"`
	Total           finguide.Money   `json:"total"`
	BlendedYield    finguide.Percent `json:"blendedYield"`
	AnnualInterest  finguide.Money   `json:"annualInterest"`
}

// EmergencyTier is where a part of the fund is kept.
type EmergencyTier struct {
	Name   string           `json:"name"`
	Months float64          `json:"months"`
	Amount finguide.Money   `json:"amount"`
	Rate   finguide.Percent `json:"rate"`
}

// NewEmergency creates the report of an emergency fund split.
func NewEmergency(fund finguide.EmergencyFund, monthlyExpenses, months float64, currency string) *Emergency {
	e := &Emergency{
		MonthlyExpenses: finguide.M(monthlyExpenses, currency),
		Months:          months,
		Tiers:           make([]EmergencyTier, 0, len(fund.Tiers)),
		Total:           finguide.M(fund.Total, currency),
		BlendedYield:    fund.BlendedYield,
		AnnualInterest:  finguide.M(fund.AnnualInterest, currency),
	}
	for _, t := range fund.Tiers {
		e.Tiers = append(e.Tiers, EmergencyTier{
			Name:   t.Name,
			Months: t.Months,
			Amount: finguide.M(t.Amount, currency),
			Rate:   finguide.Percent(t.Rate * 100),
		})
	}
	return e
}
