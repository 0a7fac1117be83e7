package finguide

import "math"

// Yields of the emergency fund tiers.
const (
	CheckingRate = 0.0001
	HYSARate     = 0.045
	TBillRate    = 0.05
)

// FundTier is a slice of the emergency fund kept in one kind of account.
type FundTier struct {
	Name   string  `json:"name"`
	Months float64 `json:"months"`
	Amount float64 `json:"amount"`
	Rate   float64 `json:"rate"`
}

// EmergencyFund is the tiered split of an emergency fund.
type EmergencyFund struct {
	Tiers          []FundTier `json:"tiers"`
	Total          float64    `json:"total"`
	BlendedYield   Percent    `json:"blendedYield"`
	AnnualInterest float64    `json:"annualInterest"`
}

// EmergencyFundTiers splits 'months' of monthlyExpenses into up to three
// tiers: the first month in checking, the next four in a high-yield savings
// account and the rest in T-Bills or CDs. Tiers holding no month are not
// returned.
//
// With months == 0 the blended yield and the annual interest are NaN: there
// is no fund to weight the rates with. It is up to the caller to display
// them as not available.
func EmergencyFundTiers(monthlyExpenses, months float64) EmergencyFund {
	total := monthlyExpenses * months

	tier1 := math.Min(1, months)
	tier2 := math.Min(math.Max(months-1, 0), 4)
	tier3 := math.Max(months-5, 0)

	all := []FundTier{
		{Name: "Checking", Months: tier1, Amount: monthlyExpenses * tier1, Rate: CheckingRate},
		{Name: "HYSA", Months: tier2, Amount: monthlyExpenses * tier2, Rate: HYSARate},
		{Name: "T-Bills / CDs", Months: tier3, Amount: monthlyExpenses * tier3, Rate: TBillRate},
	}
	var tiers []FundTier
	for _, t := range all {
		if t.Months > 0 {
			tiers = append(tiers, t)
		}
	}

	var sum float64
	for _, t := range tiers {
		sum += t.Amount * t.Rate
	}
	weightedRate := sum / total
	annualInterest := total * weightedRate

	return EmergencyFund{
		Tiers:          tiers,
		Total:          round(total),
		BlendedYield:   Percent(round(weightedRate*10000) / 100),
		AnnualInterest: round(annualInterest),
	}
}
