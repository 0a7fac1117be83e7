package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/finguide"
	"github.com/etnz/finguide/renderer"
	"github.com/google/subcommands"
)

// debtCmd holds the flags for the 'debt' subcommand.
type debtCmd struct {
	outputFlags
	file   string
	debts  debtsFlag
	extra  float64
	method string
}

func (*debtCmd) Name() string { return "debt" }
func (*debtCmd) Synopsis() string {
	return "simulate a debt payoff with the avalanche or snowball method"
}
func (*debtCmd) Usage() string {
	return `guide debt [-f <file>] [-d <name:balance:rate:minimum>]... [-x <extra payment>] [-m avalanche|snowball|compare] [-json] [-path <jsonpath>]

  Simulates paying off debts month by month. Debts are read from a file
  (JSONL, JSON or YAML depending on the extension) and from -d flags.

Usage Examples:
# Two debts, 200 a month on top of the minimums
$ guide debt -d Card:4500:0.229:90 -d Car:12000:0.069:250 -x 200 -m compare
`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "file of debts")
	f.Var(&c.debts, "d", "a debt as name:balance:rate:minimum, can be repeated")
	f.Float64Var(&c.extra, "x", 0, "extra payment every month")
	f.StringVar(&c.method, "m", "avalanche", "payoff method: avalanche, snowball or compare")
	c.outputFlags.SetFlags(f)
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	debts, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading debts: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := finguide.ValidateDebts(debts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid debts:\n%v\n", err)
		return subcommands.ExitUsageError
	}

	if c.method == "compare" {
		comparison := finguide.CompareMethods(debts, c.extra)
		report := renderer.NewDebtComparison(comparison, debts, c.extra, Currency())
		return c.print(report, func() string { return renderer.RenderDebtComparison(report) })
	}

	method, err := finguide.ParsePayoffMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	payoff := finguide.SimulateDebtPayoff(debts, c.extra, method)
	if payoff.Capped() {
		log.Printf("debts are not paid off after %d months", payoff.Months)
	}
	report := renderer.NewDebt(payoff, debts, c.extra, method, Currency())
	return c.print(report, func() string { return renderer.RenderDebt(report) })
}

// load returns the debts of the file, if any, followed by the -d ones.
func (c *debtCmd) load() ([]finguide.Debt, error) {
	var debts []finguide.Debt
	if c.file != "" {
		f, err := os.Open(c.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		debts, err = finguide.DecodeDebts(f, finguide.FormatOf(c.file))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.file, err)
		}
		log.Printf("read %d debts from %s", len(debts), c.file)
	}
	return append(debts, c.debts...), nil
}
