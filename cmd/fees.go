package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finguide"
	"github.com/etnz/finguide/renderer"
	"github.com/google/subcommands"
)

// feesCmd holds the flags for the 'fees' subcommand.
type feesCmd struct {
	outputFlags
	principal float64
	rate      float64
	years     int
	a, b      string
}

func (*feesCmd) Name() string { return "fees" }
func (*feesCmd) Synopsis() string {
	return "compare the growth of two funds with different expense ratios"
}
func (*feesCmd) Usage() string {
	return `guide fees [-p <principal>] [-r <annual return>] [-y <years>] [-a <fund>] [-b <fund>] [-json] [-path <jsonpath>]

  Compares the same investment in two funds that only differ by their expense ratio.
  A fund is an expense ratio (0.01 is 1%) or the ticker of an example fund (see guide limits).

Usage Examples:
# A 1% fund against VTI
$ guide fees -a 0.01 -b VTI
`
}

func (c *feesCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "p", 100000, "amount invested")
	f.Float64Var(&c.rate, "r", 0.07, "annual return before fees")
	f.IntVar(&c.years, "y", 30, "number of years")
	f.StringVar(&c.a, "a", "0.01", "fund A, an expense ratio or a ticker")
	f.StringVar(&c.b, "b", "VTI", "fund B, an expense ratio or a ticker")
	c.outputFlags.SetFlags(f)
}

func (c *feesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := parseFund(c.a, "Fund A")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -a: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := parseFund(c.b, "Fund B")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -b: %v\n", err)
		return subcommands.ExitUsageError
	}

	points := finguide.FeeImpact(c.principal, c.rate, c.years, a.ExpenseRatio, b.ExpenseRatio)
	report := renderer.NewFees(points, c.principal, c.rate, a, b, Currency())
	return c.print(report, func() string { return renderer.RenderFees(report) })
}
