package finguide

import (
	"math"

	"github.com/shopspring/decimal"
)

// Quantity is a number of fund shares. Like Money, a non-finite quantity is
// kept as not available.
type Quantity struct {
	value decimal.Decimal
	na    bool
}

// Q returns 'value' as a Quantity.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	switch v := any(value).(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Quantity{na: true}
		}
		return Quantity{value: decimal.NewFromFloat(v)}
	case int:
		return Quantity{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Quantity{value: decimal.NewFromInt(v)}
	case decimal.Decimal:
		return Quantity{value: v}
	default:
		panic("unsupported type")
	}
}

func (q Quantity) Equal(p Quantity) bool { return q.na == p.na && q.value.Equal(p.value) }
func (q Quantity) IsAvailable() bool     { return !q.na }
func (q Quantity) IsZero() bool          { return !q.na && q.value.IsZero() }
func (q Quantity) Add(p Quantity) Quantity {
	return Quantity{value: q.value.Add(p.value), na: q.na || p.na}
}

// String returns the quantity with at most 4 decimals, or "N/A".
func (q Quantity) String() string {
	if q.na {
		return "N/A"
	}
	return q.value.Round(4).String()
}

// MarshalJSON writes the quantity as a number, or null when not available.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.na {
		return []byte("null"), nil
	}
	return q.value.MarshalJSON()
}
