package finguide

// FeeComparisonPoint holds the value of the same investment in two funds
// that only differ by their expense ratio.
type FeeComparisonPoint struct {
	Year   int     `json:"year"`
	ValueA float64 `json:"valueA"`
	ValueB float64 `json:"valueB"`
}

// FeeImpact grows principal once a year at annualReturn minus each expense
// ratio, and returns one point per year from 0 to years inclusive, rounded
// to the unit.
//
// Each point is recorded before that year's growth is applied: year 0 is the
// principal and the point of year Y reflects Y-1 growth periods.
func FeeImpact(principal, annualReturn float64, years int, expenseRatioA, expenseRatioB float64) []FeeComparisonPoint {
	var results []FeeComparisonPoint
	balanceA, balanceB := principal, principal

	for y := 0; y <= years; y++ {
		results = append(results, FeeComparisonPoint{
			Year:   y,
			ValueA: round(balanceA),
			ValueB: round(balanceB),
		})
		balanceA *= 1 + (annualReturn - expenseRatioA)
		balanceB *= 1 + (annualReturn - expenseRatioB)
	}
	return results
}

// Cost returns how much more fund B cost than fund A at the end of the
// comparison. It is negative when B is the cheaper fund.
func (p FeeComparisonPoint) Cost() float64 { return p.ValueA - p.ValueB }
