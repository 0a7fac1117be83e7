package finguide

import "math"

// round rounds half up, toward +Inf, the way the guide's widgets always did:
// round(-2.5) is -2 where math.Round would give -3.
// NaN and infinities are returned unchanged.
func round(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// roundCents rounds x to 2 decimal places.
func roundCents(x float64) float64 { return round(x*100) / 100 }

func clamp(x, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, x)) }
