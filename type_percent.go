package finguide

import (
	"encoding/json"
	"fmt"
	"math"
)

// Percent is a percentage: 12.5 reads 12.5%. Unlike rates, which are
// fractions, percentages are meant for display.
type Percent float64

// Rate returns the percentage as a fraction.
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// IsFinite reports whether p is neither NaN nor infinite.
func (p Percent) IsFinite() bool {
	return !math.IsNaN(float64(p)) && !math.IsInf(float64(p), 0)
}

func (p Percent) String() string {
	if !p.IsFinite() {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	if !p.IsFinite() {
		return "N/A"
	}
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// MarshalJSON writes the percentage as a number, or null when not finite.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}
