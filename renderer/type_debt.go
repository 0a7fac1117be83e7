package renderer

import (
	"fmt"

	"github.com/etnz/finguide"
)

// Debt is the report of a debt payoff simulation.
type Debt struct {
	Method        string          `json:"method"`
	Extra         finguide.Money  `json:"extraPayment"`
	Debts         []DebtLine      `json:"debts"`
	Total         finguide.Money  `json:"total"`
	Months        int             `json:"months"`
	Duration      string          `json:"duration"`
	TotalInterest finguide.Money  `json:"totalInterest"`
	Capped        bool            `json:"capped"`
	PayoffOrder   []string        `json:"payoffOrder"`
	Milestones    []DebtMilestone `json:"milestones"`
}

// DebtLine is one of the debts, as given.
type DebtLine struct {
	Name    string           `json:"name"`
	Balance finguide.Money   `json:"balance"`
	Rate    finguide.Percent `json:"rate"`
	Minimum finguide.Money   `json:"minimum"`
}

// DebtMilestone is a month worth showing in the timeline: a debt was paid
// off, a year went by, or the simulation ended.
type DebtMilestone struct {
	Month     int            `json:"month"`
	Remaining finguide.Money `json:"remaining"`
	PaidOff   []string       `json:"paidOff"` // debts paid off that month
}

// NewDebt creates the report of a payoff simulation.
func NewDebt(payoff finguide.DebtPayoff, debts []finguide.Debt, extraPayment float64, method finguide.PayoffMethod, currency string) *Debt {
	d := &Debt{
		Method:        method.String(),
		Extra:         finguide.M(extraPayment, currency),
		Debts:         debtLines(debts, currency),
		Total:         finguide.M(0, currency),
		Months:        payoff.Months,
		Duration:      duration(payoff.Months),
		TotalInterest: finguide.M(payoff.TotalInterest, currency),
		Capped:        payoff.Capped(),
		PayoffOrder:   []string{},
		Milestones:    []DebtMilestone{},
	}
	for _, l := range debts {
		d.Total = d.Total.Add(finguide.M(l.Balance, currency))
	}

	paid := 0
	for i, m := range payoff.Timeline {
		last := i == len(payoff.Timeline)-1
		if len(m.Paid) == paid && m.Month%12 != 0 && !last {
			continue
		}
		d.Milestones = append(d.Milestones, DebtMilestone{
			Month:     m.Month,
			Remaining: finguide.M(m.Remaining, currency),
			PaidOff:   append([]string{}, m.Paid[paid:]...),
		})
		paid = len(m.Paid)
	}
	if n := len(payoff.Timeline); n > 0 {
		d.PayoffOrder = payoff.Timeline[n-1].Paid
	}
	return d
}

// DebtComparison is the report comparing both payoff methods.
type DebtComparison struct {
	Extra         finguide.Money `json:"extraPayment"`
	Debts         []DebtLine     `json:"debts"`
	Avalanche     *Debt          `json:"avalanche"`
	Snowball      *Debt          `json:"snowball"`
	InterestSaved finguide.Money `json:"interestSaved"`
	MonthsSaved   int            `json:"monthsSaved"`
}

// NewDebtComparison creates the report of a payoff method comparison.
func NewDebtComparison(c finguide.PayoffComparison, debts []finguide.Debt, extraPayment float64, currency string) *DebtComparison {
	return &DebtComparison{
		Extra:         finguide.M(extraPayment, currency),
		Debts:         debtLines(debts, currency),
		Avalanche:     NewDebt(c.Avalanche, debts, extraPayment, finguide.Avalanche, currency),
		Snowball:      NewDebt(c.Snowball, debts, extraPayment, finguide.Snowball, currency),
		InterestSaved: finguide.M(c.InterestSaved, currency),
		MonthsSaved:   c.MonthsSaved,
	}
}

func debtLines(debts []finguide.Debt, currency string) []DebtLine {
	lines := make([]DebtLine, 0, len(debts))
	for _, d := range debts {
		lines = append(lines, DebtLine{
			Name:    d.Name,
			Balance: finguide.M(d.Balance, currency),
			Rate:    finguide.Percent(d.Rate * 100),
			Minimum: finguide.M(d.Minimum, currency),
		})
	}
	return lines
}

// duration spells a number of months, e.g. "2 years 3 months".
func duration(months int) string {
	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("1 %s", unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	years, months := months/12, months%12
	switch {
	case years == 0:
		return plural(months, "month")
	case months == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(months, "month")
	}
}
