package finguide

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// MaxPayoffMonths bounds the debt payoff simulation. Debts whose minimum
// payments do not cover their interest never converge; the simulation stops
// after 50 years and returns its state at that point.
const MaxPayoffMonths = 600

// a remaining balance at or below one cent is considered paid off.
const payoffThreshold = 0.01

// PayoffMethod is the order in which debts receive the extra payment.
type PayoffMethod int

const (
	// Avalanche pays the highest interest rate first.
	Avalanche PayoffMethod = iota
	// Snowball pays the smallest balance first.
	Snowball
)

func (m PayoffMethod) String() string {
	switch m {
	case Avalanche:
		return "avalanche"
	case Snowball:
		return "snowball"
	default:
		return fmt.Sprintf("PayoffMethod(%d)", int(m))
	}
}

// ParsePayoffMethod parses "avalanche" or "snowball", case insensitive.
func ParsePayoffMethod(s string) (PayoffMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avalanche":
		return Avalanche, nil
	case "snowball":
		return Snowball, nil
	default:
		return Avalanche, fmt.Errorf("unknown payoff method %q, want avalanche or snowball", s)
	}
}

// Debt is a loan to pay off. Names must be unique among the debts of a
// simulation.
type Debt struct {
	Name    string  `json:"name" yaml:"name"`
	Balance float64 `json:"balance" yaml:"balance"`
	Rate    float64 `json:"rate" yaml:"rate"`       // annual interest rate
	Minimum float64 `json:"minimum" yaml:"minimum"` // minimum monthly payment
}

// PayoffMonth is the state of the debts at the end of a simulated month.
type PayoffMonth struct {
	Month     int      `json:"month"`
	Remaining float64  `json:"remaining"`
	Paid      []string `json:"paid"` // debts paid off so far, in payoff order
}

// DebtPayoff is the result of a debt payoff simulation.
type DebtPayoff struct {
	Months        int           `json:"months"`
	TotalInterest float64       `json:"totalInterest"`
	Timeline      []PayoffMonth `json:"timeline"`

	unpaid bool // debts remain, even below the rounded Remaining
}

// Capped reports whether the simulation stopped on MaxPayoffMonths with debts
// still to pay, even less than the rounded Remaining shows.
func (p DebtPayoff) Capped() bool { return p.unpaid }

// debtInProgress is the simulation's private copy of a Debt.
type debtInProgress struct {
	Debt
	remaining float64
	paid      bool
}

// SimulateDebtPayoff pays off debts month by month.
//
// Every month each unpaid debt accrues a month of interest and receives its
// minimum payment. The debt at the front of the payoff order also receives
// the extra payment. The order is computed once, from the debts as given:
// highest rate first for Avalanche, smallest balance first for Snowball; it
// is not revised as balances change.
//
// When a debt is paid off its minimum joins the extra payment, for the rest
// of the month and for every month after. Payments never exceed the remaining
// balance. The extra payment is only used up by a debt that stays unpaid: when
// the front debt is paid off, the whole extra payment moves on to the next
// debt in the same month.
//
// The simulation stops when every debt is paid or after MaxPayoffMonths. The
// 'debts' slice is not modified.
func SimulateDebtPayoff(debts []Debt, extraPayment float64, method PayoffMethod) DebtPayoff {
	sorted := make([]*debtInProgress, 0, len(debts))
	for _, d := range debts {
		sorted = append(sorted, &debtInProgress{Debt: d, remaining: d.Balance})
	}
	switch method {
	case Avalanche:
		slices.SortStableFunc(sorted, func(a, b *debtInProgress) int { return cmp.Compare(b.Rate, a.Rate) })
	case Snowball:
		slices.SortStableFunc(sorted, func(a, b *debtInProgress) int { return cmp.Compare(a.remaining, b.remaining) })
	}

	var (
		totalInterest float64
		freed         float64 // minimums of the debts already paid off
		month         int
		timeline      []PayoffMonth
		paidOff       = []string{} // "paid" is never null in JSON
	)

	for month < MaxPayoffMonths && anyRemaining(sorted) {
		month++
		extra := extraPayment + freed

		for _, debt := range sorted {
			if debt.remaining <= 0 {
				continue
			}
			interest := debt.remaining * debt.Rate / 12
			totalInterest += interest
			debt.remaining += interest

			payment := debt.Minimum
			if front(sorted) == debt {
				payment += extra
			}
			payment = min(payment, debt.remaining)
			debt.remaining -= payment
			if front(sorted) == debt {
				extra = max(0, extra-(payment-debt.Minimum))
			}

			if debt.remaining <= payoffThreshold {
				debt.remaining = 0
				if !debt.paid {
					debt.paid = true
					paidOff = append(paidOff, debt.Name)
					extra += debt.Minimum
					freed += debt.Minimum
				}
			}
		}

		var totalRemaining float64
		for _, d := range sorted {
			totalRemaining += d.remaining
		}
		timeline = append(timeline, PayoffMonth{
			Month:     month,
			Remaining: round(totalRemaining),
			Paid:      append([]string{}, paidOff...),
		})
	}

	return DebtPayoff{
		Months:        month,
		TotalInterest: round(totalInterest),
		Timeline:      timeline,
		unpaid:        anyRemaining(sorted),
	}
}

// front returns the first debt of the payoff order with a remaining balance.
func front(sorted []*debtInProgress) *debtInProgress {
	for _, d := range sorted {
		if d.remaining > 0 {
			return d
		}
	}
	return nil
}

func anyRemaining(sorted []*debtInProgress) bool { return front(sorted) != nil }

// PayoffComparison compares both payoff methods on the same debts.
type PayoffComparison struct {
	Avalanche DebtPayoff `json:"avalanche"`
	Snowball  DebtPayoff `json:"snowball"`
	// InterestSaved is the interest the avalanche method saves over the
	// snowball method. It can be negative.
	InterestSaved float64 `json:"interestSaved"`
	// MonthsSaved is how many months sooner the avalanche method is done.
	MonthsSaved int `json:"monthsSaved"`
}

// CompareMethods runs the payoff simulation with both methods.
func CompareMethods(debts []Debt, extraPayment float64) PayoffComparison {
	a := SimulateDebtPayoff(debts, extraPayment, Avalanche)
	s := SimulateDebtPayoff(debts, extraPayment, Snowball)
	return PayoffComparison{
		Avalanche:     a,
		Snowball:      s,
		InterestSaved: s.TotalInterest - a.TotalInterest,
		MonthsSaved:   s.Months - a.Months,
	}
}
