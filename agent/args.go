package agent

import (
	"fmt"
	"math"
	"strconv"

	"github.com/etnz/finguide"
)

// argParser reads the arguments of a function call. The first error is
// kept, and the following reads return zero values.
type argParser struct {
	args map[string]any
	err  error
}

func (p *argParser) fail(format string, a ...any) {
	if p.err == nil {
		p.err = fmt.Errorf(format, a...)
	}
}

// toNumber converts a JSON decoded value.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// number returns the argument 'name', or 'def' when it is missing.
func (p *argParser) number(name string, def float64) float64 {
	v, ok := p.args[name]
	if !ok || p.err != nil {
		return def
	}
	f, ok := toNumber(v)
	if !ok {
		p.fail("argument %q must be a number, got %T", name, v)
	}
	return f
}

// integer returns the argument 'name' as a whole number, or 'def'.
func (p *argParser) integer(name string, def int) int {
	f := p.number(name, float64(def))
	if f != math.Trunc(f) {
		p.fail("argument %q must be a whole number, got %v", name, f)
		return def
	}
	return int(f)
}

// maxYears bounds the horizons a model can ask for.
const maxYears = 100

// years returns the argument 'name' as a number of years, between 0 and
// maxYears.
func (p *argParser) years(name string) int {
	n := p.integer(name, 0)
	if n < 0 || n > maxYears {
		p.fail("argument %q must be between 0 and %d, got %d", name, maxYears, n)
		return 0
	}
	return n
}

// numbers returns the array argument 'name'.
func (p *argParser) numbers(name string) []float64 {
	list := p.list(name)
	values := make([]float64, 0, len(list))
	for i, v := range list {
		f, ok := toNumber(v)
		if !ok {
			p.fail("argument %q[%d] must be a number, got %T", name, i, v)
			return nil
		}
		values = append(values, f)
	}
	return values
}

// debts returns the array of debt objects 'name'.
func (p *argParser) debts(name string) []finguide.Debt {
	list := p.list(name)
	debts := make([]finguide.Debt, 0, len(list))
	for i, v := range list {
		obj, ok := v.(map[string]any)
		if !ok {
			p.fail("argument %q[%d] must be an object, got %T", name, i, v)
			return nil
		}
		debtName, _ := obj["name"].(string)
		d := &argParser{args: obj}
		debt := finguide.Debt{
			Name:    debtName,
			Balance: d.number("balance", 0),
			Rate:    d.number("rate", 0),
			Minimum: d.number("minimum", 0),
		}
		if d.err != nil {
			p.fail("argument %q[%d]: %w", name, i, d.err)
			return nil
		}
		debts = append(debts, debt)
	}
	return debts
}

func (p *argParser) list(name string) []any {
	v, ok := p.args[name]
	if !ok {
		p.fail("argument %q is required", name)
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		p.fail("argument %q must be an array, got %T", name, v)
	}
	return list
}
