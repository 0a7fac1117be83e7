package finguide

// Allocation is a suggested portfolio split, in whole percentage points.
// Stocks and Bonds add up to 100, USStocks and IntlStocks add up to Stocks.
type Allocation struct {
	Stocks     Percent `json:"stocks"`
	Bonds      Percent `json:"bonds"`
	USStocks   Percent `json:"usStocks"`
	IntlStocks Percent `json:"intlStocks"`
}

// SuggestAllocation suggests a stock/bond split from the "110 minus age" rule
// of thumb, moved by up to 15 points by riskTolerance (0 to 100, 50 is
// neutral) and kept between 20% and 95% stocks.
//
// Stocks are split 60/40 between US and international markets, roughly their
// share of the global market capitalization. International stocks get the
// remainder so that the split never drifts from the stock allocation.
func SuggestAllocation(age, riskTolerance float64) Allocation {
	baseEquity := clamp(110-age, 20, 95)
	riskAdjustment := ((riskTolerance - 50) / 50) * 15

	stocks := round(clamp(baseEquity+riskAdjustment, 20, 95))
	usStocks := round(stocks * 0.6)

	return Allocation{
		Stocks:     Percent(stocks),
		Bonds:      Percent(100 - stocks),
		USStocks:   Percent(usStocks),
		IntlStocks: Percent(stocks - usStocks),
	}
}
