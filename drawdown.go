package finguide

// Drawdown is a decline of a value series from a peak, given as indices in
// the series.
type Drawdown struct {
	Peak     int     `json:"peak"`
	Trough   int     `json:"trough"`
	Recovery int     `json:"recovery"` // first index back at the peak value, -1 if none
	Depth    Percent `json:"depth"`    // from peak to trough, negative
}

// Recovered reports whether the series got back to the peak value.
func (d Drawdown) Recovered() bool { return d.Recovery >= 0 }

// Duration is the number of steps from the peak to the recovery, or -1.
func (d Drawdown) Duration() int {
	if !d.Recovered() {
		return -1
	}
	return d.Recovery - d.Peak
}

// Drawdowns lists every decline of 'values' below its running peak, in
// order. A drawdown ends when the series comes back at or above its peak; the
// last one may still be under water.
func Drawdowns(values []float64) []Drawdown {
	var (
		result []Drawdown
		peak   int
		trough = -1 // no drawdown in progress
	)
	for i, v := range values {
		switch {
		case v >= values[peak]:
			if trough >= 0 {
				result = append(result, newDrawdown(values, peak, trough, i))
				trough = -1
			}
			peak = i
		case trough < 0 || v < values[trough]:
			trough = i
		}
	}
	if trough >= 0 {
		result = append(result, newDrawdown(values, peak, trough, -1))
	}
	return result
}

func newDrawdown(values []float64, peak, trough, recovery int) Drawdown {
	return Drawdown{
		Peak:     peak,
		Trough:   trough,
		Recovery: recovery,
		Depth:    Percent(roundCents((values[trough]/values[peak] - 1) * 100)),
	}
}

// Deepest returns the drawdown with the largest decline, and false if there
// is none.
func Deepest(drawdowns []Drawdown) (Drawdown, bool) {
	if len(drawdowns) == 0 {
		return Drawdown{}, false
	}
	deepest := drawdowns[0]
	for _, d := range drawdowns[1:] {
		if d.Depth < deepest.Depth {
			deepest = d
		}
	}
	return deepest, true
}
