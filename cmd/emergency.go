package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finguide"
	"github.com/etnz/finguide/renderer"
	"github.com/google/subcommands"
)

// emergencyCmd holds the flags for the 'emergency' subcommand.
type emergencyCmd struct {
	outputFlags
	expenses float64
	months   float64
}

func (*emergencyCmd) Name() string     { return "emergency" }
func (*emergencyCmd) Synopsis() string { return "split an emergency fund across accounts" }
func (*emergencyCmd) Usage() string {
	return `guide emergency [-e <monthly expenses>] [-m <months>] [-json] [-path <jsonpath>]

  Splits months of expenses between checking, a high-yield savings account and T-Bills.
`
}

func (c *emergencyCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.expenses, "e", 4000, "monthly expenses")
	f.Float64Var(&c.months, "m", 6, "months of expenses to keep")
	c.outputFlags.SetFlags(f)
}

func (c *emergencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fund := finguide.EmergencyFundTiers(c.expenses, c.months)
	report := renderer.NewEmergency(fund, c.expenses, c.months, Currency())
	return c.print(report, func() string { return renderer.RenderEmergency(report) })
}
