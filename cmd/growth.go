package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finguide"
	"github.com/etnz/finguide/renderer"
	"github.com/google/subcommands"
)

// growthCmd holds the flags for the 'growth' subcommand.
type growthCmd struct {
	outputFlags
	principal    float64
	contribution float64
	rate         float64
	years        int
}

func (*growthCmd) Name() string { return "growth" }
func (*growthCmd) Synopsis() string {
	return "compound growth of a principal and monthly contributions"
}
func (*growthCmd) Usage() string {
	return `guide growth [-p <principal>] [-c <monthly contribution>] [-r <annual rate>] [-y <years>] [-json] [-path <jsonpath>]

  Simulates monthly compounding and prints the balance at the end of each year.
  Rates are fractions: 0.07 is 7%.
`
}

func (c *growthCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "p", 10000, "initial amount invested")
	f.Float64Var(&c.contribution, "c", 500, "amount added every month")
	f.Float64Var(&c.rate, "r", 0.07, "annual rate of return")
	f.IntVar(&c.years, "y", 30, "number of years")
	c.outputFlags.SetFlags(f)
}

func (c *growthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series := finguide.CompoundGrowth(c.principal, c.contribution, c.rate, c.years)
	report := renderer.NewGrowth(series, c.principal, c.contribution, c.rate, Currency())
	return c.print(report, func() string { return renderer.RenderGrowth(report) })
}
