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

// drawdownCmd holds the flags for the 'drawdown' subcommand.
type drawdownCmd struct {
	outputFlags
}

func (*drawdownCmd) Name() string     { return "drawdown" }
func (*drawdownCmd) Synopsis() string { return "list the declines of a value series from its peak" }
func (*drawdownCmd) Usage() string {
	return `guide drawdown [-json] [-path <jsonpath>] <value>...

  Lists the drawdowns of the series of values, in order.
`
}

func (c *drawdownCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
}

func (c *drawdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	values, err := parseNumbers(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing values: %v\n", err)
		return subcommands.ExitUsageError
	}

	report := renderer.NewDrawdowns(finguide.Drawdowns(values), values)
	return c.print(report, func() string { return renderer.RenderDrawdowns(report) })
}
