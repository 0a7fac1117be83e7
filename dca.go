package finguide

// DCAResult is the outcome of investing a fixed amount at every price.
type DCAResult struct {
	Invested     float64 `json:"invested"`
	Shares       float64 `json:"shares"`
	AveragePrice float64 `json:"averagePrice"` // Invested / Shares
	FinalValue   float64 `json:"finalValue"`   // Shares valued at the last price
}

// DollarCostAveraging invests 'amount' at each of the 'prices', buying
// fractional shares. Because the same amount buys more shares when the
// price is low, the average price paid is never above the average of the
// prices.
//
// An empty series invests nothing: the average price is then NaN.
func DollarCostAveraging(amount float64, prices []float64) DCAResult {
	var r DCAResult
	for _, p := range prices {
		r.Shares += amount / p
		r.Invested += amount
	}
	r.AveragePrice = r.Invested / r.Shares
	if len(prices) > 0 {
		r.FinalValue = r.Shares * prices[len(prices)-1]
	}
	return r
}

// MarshalJSON encodes the result, with null for an undefined average price.
func (r DCAResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Number("invested", r.Invested)
	w.Number("shares", r.Shares)
	w.Number("averagePrice", r.AveragePrice)
	w.Number("finalValue", r.FinalValue)
	return w.MarshalJSON()
}
