package finguide

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
//
// The formulas compute with float64 and may return NaN or infinite amounts
// for degenerate inputs; such amounts are kept as "not available" Money.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
	na    bool // not a finite amount
}

// M returns 'value' in 'currency'.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	switch v := any(value).(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Money{cur: currency, na: true}
		}
		return Money{value: decimal.NewFromFloat(v), cur: currency}
	case int:
		return Money{value: decimal.NewFromInt(int64(v)), cur: currency}
	case int64:
		return Money{value: decimal.NewFromInt(v), cur: currency}
	case decimal.Decimal:
		return Money{value: v, cur: currency}
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted in its currency, rounded to the
// currency's minor unit, or "N/A".
func (m Money) String() string {
	if m.na {
		return "N/A"
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	switch {
	case m.na:
		return "N/A"
	case m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	default:
		return m.String()
	}
}

func (m Money) Currency() string  { return m.cur }
func (m Money) IsAvailable() bool { return !m.na }
func (m Money) IsZero() bool      { return !m.na && m.value.IsZero() }
func (m Money) IsNegative() bool  { return !m.na && m.value.IsNegative() }
func (m Money) Equal(n Money) bool {
	return m.na == n.na && m.value.Equal(n.value) && m.cur == n.cur
}

// binary operators. Any operand not available makes the result not available.
func (m Money) Add(n Money) Money {
	return Money{value: m.value.Add(n.value), cur: cur(m, n), na: m.na || n.na}
}
func (m Money) Sub(n Money) Money {
	return Money{value: m.value.Sub(n.value), cur: cur(m, n), na: m.na || n.na}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	if m.na {
		w.Append("amount", nil)
	} else {
		w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	}
	return w.MarshalJSON()
}
