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

// dcaCmd holds the flags for the 'dca' subcommand.
type dcaCmd struct {
	outputFlags
	amount float64
}

func (*dcaCmd) Name() string     { return "dca" }
func (*dcaCmd) Synopsis() string { return "invest the same amount at each price of a series" }
func (*dcaCmd) Usage() string {
	return `guide dca [-a <amount>] [-json] [-path <jsonpath>] <price>...

  Dollar cost averaging: buys shares for the same amount at each price.
`
}

func (c *dcaCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 100, "amount invested at each price")
	c.outputFlags.SetFlags(f)
}

func (c *dcaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one price is required")
		return subcommands.ExitUsageError
	}
	prices, err := parseNumbers(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing prices: %v\n", err)
		return subcommands.ExitUsageError
	}

	res := finguide.DollarCostAveraging(c.amount, prices)
	report := renderer.NewDCA(res, c.amount, prices, Currency())
	return c.print(report, func() string { return renderer.RenderDCA(report) })
}
