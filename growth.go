package finguide

// YearlyBalance is the balance of an account at the end of a year.
type YearlyBalance struct {
	Year    int     `json:"year"`
	Balance float64 `json:"balance"`
}

// CompoundGrowth simulates 'years' of monthly compounding at annualRate/12,
// adding monthlyContribution after each month's growth.
//
// It returns years+1 snapshots: the principal at year 0, then the balance
// rounded to the cent at the end of each year. A non positive 'years' only
// returns the year 0 snapshot.
func CompoundGrowth(principal, monthlyContribution, annualRate float64, years int) []YearlyBalance {
	monthlyRate := annualRate / 12
	results := []YearlyBalance{{Year: 0, Balance: principal}}
	balance := principal

	for month := 1; month <= years*12; month++ {
		balance = balance*(1+monthlyRate) + monthlyContribution
		if month%12 == 0 {
			results = append(results, YearlyBalance{Year: month / 12, Balance: roundCents(balance)})
		}
	}
	return results
}

// Final returns the last balance of a growth series, or 0 for an empty one.
func Final(series []YearlyBalance) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1].Balance
}
