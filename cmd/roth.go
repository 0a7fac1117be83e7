package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finguide"
	"github.com/etnz/finguide/renderer"
	"github.com/google/subcommands"
)

// rothCmd holds the flags for the 'roth' subcommand.
type rothCmd struct {
	outputFlags
	contribution float64
	now, later   float64
	rate         float64
	years        int
}

func (*rothCmd) Name() string     { return "roth" }
func (*rothCmd) Synopsis() string { return "compare Roth and Traditional retirement accounts" }
func (*rothCmd) Usage() string {
	return `guide roth [-c <annual contribution>] [-now <tax rate>] [-later <tax rate>] [-r <annual return>] [-y <years>] [-json] [-path <jsonpath>]

  Compares the after-tax value of yearly contributions in a Roth and a Traditional account.
`
}

func (c *rothCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.contribution, "c", finguide.ContributionLimits[1].Standard, "annual contribution, before tax")
	f.Float64Var(&c.now, "now", 0.22, "current marginal tax rate")
	f.Float64Var(&c.later, "later", 0.22, "expected tax rate in retirement")
	f.Float64Var(&c.rate, "r", 0.07, "annual rate of return")
	f.IntVar(&c.years, "y", 30, "number of years")
	c.outputFlags.SetFlags(f)
}

func (c *rothCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res := finguide.RothVsTraditional(c.contribution, c.now, c.later, c.rate, c.years)
	report := renderer.NewRoth(res, c.contribution, c.now, c.later, c.rate, c.years, Currency())
	return c.print(report, func() string { return renderer.RenderRoth(report) })
}
