package renderer

import (
	"strconv"

	"github.com/etnz/finguide"
)

// Drawdowns is the report of the declines of a value series.
type Drawdowns struct {
	Periods    int            `json:"periods"`
	Drawdowns  []DrawdownLine `json:"drawdowns"`
	Deepest    *DrawdownLine  `json:"deepest,omitempty"`
	Underwater bool           `json:"underwater"` // the series ends below its peak
}

// DrawdownLine is a decline from a peak, by period index.
type DrawdownLine struct {
	Peak      int              `json:"peak"`
	Trough    int              `json:"trough"`
	Recovery  string           `json:"recovery"` // period index, or "not yet"
	Depth     finguide.Percent `json:"depth"`
	Duration  int              `json:"duration"`
	PeakValue float64          `json:"peakValue"`
	Low       float64          `json:"low"`
}

// NewDrawdowns creates the report of the drawdowns found in 'values'.
func NewDrawdowns(drawdowns []finguide.Drawdown, values []float64) *Drawdowns {
	r := &Drawdowns{
		Periods:   len(values),
		Drawdowns: make([]DrawdownLine, 0, len(drawdowns)),
	}
	line := func(d finguide.Drawdown) DrawdownLine {
		l := DrawdownLine{
			Peak:      d.Peak,
			Trough:    d.Trough,
			Recovery:  "not yet",
			Depth:     d.Depth,
			Duration:  d.Duration(),
			PeakValue: values[d.Peak],
			Low:       values[d.Trough],
		}
		if d.Recovered() {
			l.Recovery = strconv.Itoa(d.Recovery)
		}
		return l
	}
	for _, d := range drawdowns {
		r.Drawdowns = append(r.Drawdowns, line(d))
		if !d.Recovered() {
			r.Underwater = true
		}
	}
	if d, ok := finguide.Deepest(drawdowns); ok {
		l := line(d)
		r.Deepest = &l
	}
	return r
}
