package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/finguide"
)

// debtsFlag collects the repeated -d name:balance:rate:minimum flags.
type debtsFlag []finguide.Debt

func (d *debtsFlag) String() string {
	if d == nil {
		return ""
	}
	parts := make([]string, 0, len(*d))
	for _, debt := range *d {
		parts = append(parts, debt.String())
	}
	return strings.Join(parts, ",")
}

func (d *debtsFlag) Set(s string) error {
	debt, err := finguide.ParseDebt(s)
	if err != nil {
		return err
	}
	*d = append(*d, debt)
	return nil
}

// parseFund parses a fund given by the ticker of an example fund or by its
// expense ratio, in which case it is called 'name'.
func parseFund(s, name string) (finguide.Fund, error) {
	if f, err := finguide.FundByTicker(s); err == nil {
		return f, nil
	}
	ratio, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return finguide.Fund{}, fmt.Errorf("invalid fund %q, want an expense ratio like 0.0003 or a ticker among %s", s, tickers())
	}
	return finguide.Fund{Name: name, ExpenseRatio: ratio}, nil
}

func tickers() string { return strings.Join(fundTickers(), ", ") }

// parseNumbers parses positional arguments as numbers.
func parseNumbers(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		values = append(values, v)
	}
	return values, nil
}
