package renderer

import "github.com/etnz/finguide"

// Fees is the report comparing the growth of the same investment in two
// funds with different expense ratios.
type Fees struct {
	Principal finguide.Money   `json:"principal"`
	Return    finguide.Percent `json:"annualReturn"`
	Years     int              `json:"years"`
	FundA     FeesFund         `json:"fundA"`
	FundB     FeesFund         `json:"fundB"`
	Points    []FeesPoint      `json:"points"`
	// Cheaper and Pricier are the labels of the funds ending with the
	// highest and the lowest value, empty when both end equal.
	Cheaper string `json:"cheaper,omitempty"`
	Pricier string `json:"pricier,omitempty"`
	// Cost is what the pricier fund costs at the end.
	Cost finguide.Money `json:"cost"`
	// CostShare is Cost as a share of the cheaper fund's final value.
	CostShare finguide.Percent `json:"costShare"`
}

// FeesFund describes one side of the comparison.
type FeesFund struct {
	Label        string           `json:"label"`
	ExpenseRatio finguide.Percent `json:"expenseRatio"`
	Final        finguide.Money   `json:"final"`
}

// FeesPoint is the value in both funds at the end of a year.
type FeesPoint struct {
	Year   int            `json:"year"`
	ValueA finguide.Money `json:"valueA"`
	ValueB finguide.Money `json:"valueB"`
	Cost   finguide.Money `json:"cost"` // ValueA - ValueB
}

// NewFees creates the report of a fee comparison. Funds are labelled by
// their ticker when they have one, by their name otherwise.
func NewFees(points []finguide.FeeComparisonPoint, principal, annualReturn float64, a, b finguide.Fund, currency string) *Fees {
	f := &Fees{
		Principal: finguide.M(principal, currency),
		Return:    finguide.Percent(annualReturn * 100),
		Years:     max(len(points)-1, 0),
		FundA:     FeesFund{Label: fundLabel(a), ExpenseRatio: finguide.Percent(a.ExpenseRatio * 100)},
		FundB:     FeesFund{Label: fundLabel(b), ExpenseRatio: finguide.Percent(b.ExpenseRatio * 100)},
		Points:    make([]FeesPoint, 0, len(points)),
	}
	for _, p := range points {
		f.Points = append(f.Points, FeesPoint{
			Year:   p.Year,
			ValueA: finguide.M(p.ValueA, currency),
			ValueB: finguide.M(p.ValueB, currency),
			Cost:   finguide.M(p.Cost(), currency),
		})
	}
	if len(points) > 0 {
		last := points[len(points)-1]
		f.FundA.Final = finguide.M(last.ValueA, currency)
		f.FundB.Final = finguide.M(last.ValueB, currency)
		cost, best := last.Cost(), last.ValueA
		switch {
		case cost > 0:
			f.Cheaper, f.Pricier = f.FundA.Label, f.FundB.Label
		case cost < 0:
			f.Cheaper, f.Pricier = f.FundB.Label, f.FundA.Label
			cost, best = -cost, last.ValueB
		}
		f.Cost = finguide.M(cost, currency)
		f.CostShare = finguide.Percent(cost / best * 100)
	}
	return f
}

func fundLabel(f finguide.Fund) string {
	if f.Ticker != "" {
		return f.Ticker
	}
	return f.Name
}
