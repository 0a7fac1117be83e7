package renderer

import "github.com/etnz/finguide"

// DCA is the dollar cost averaging report.
type DCA struct {
	Amount       finguide.Money    `json:"amount"`
	Purchases    []DCAPurchase     `json:"purchases"`
	Invested     finguide.Money    `json:"invested"`
	Shares       finguide.Quantity `json:"shares"`
	AveragePrice finguide.Money    `json:"averagePrice"`
	AverageQuote finguide.Money    `json:"averageQuote"` // plain average of the prices
	FinalValue   finguide.Money    `json:"finalValue"`
	Gain         finguide.Money    `json:"gain"`
	Return       finguide.Percent  `json:"return"`
}

// DCAPurchase is one periodic purchase.
type DCAPurchase struct {
	Period int               `json:"period"`
	Price  finguide.Money    `json:"price"`
	Shares finguide.Quantity `json:"shares"`
}

// NewDCA creates the report of periodic purchases of 'amount' at 'prices'.
func NewDCA(r finguide.DCAResult, amount float64, prices []float64, currency string) *DCA {
	d := &DCA{
		Amount:       finguide.M(amount, currency),
		Purchases:    make([]DCAPurchase, 0, len(prices)),
		Invested:     finguide.M(r.Invested, currency),
		Shares:       finguide.Q(r.Shares),
		AveragePrice: finguide.M(r.AveragePrice, currency),
		FinalValue:   finguide.M(r.FinalValue, currency),
		Gain:         finguide.M(r.FinalValue-r.Invested, currency),
		Return:       finguide.Percent((r.FinalValue/r.Invested - 1) * 100),
	}
	var sum float64
	for i, p := range prices {
		sum += p
		d.Purchases = append(d.Purchases, DCAPurchase{Period: i + 1, Price: finguide.M(p, currency), Shares: finguide.Q(amount / p)})
	}
	d.AverageQuote = finguide.M(sum/float64(len(prices)), currency)
	return d
}
