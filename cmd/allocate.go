package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finguide"
	"github.com/etnz/finguide/renderer"
	"github.com/google/subcommands"
)

// allocateCmd holds the flags for the 'allocate' subcommand.
type allocateCmd struct {
	outputFlags
	age  float64
	risk float64
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "suggest a stock and bond allocation" }
func (*allocateCmd) Usage() string {
	return `guide allocate [-age <age>] [-risk <0 to 100>] [-json] [-path <jsonpath>]

  Suggests an allocation from the "110 minus age" rule, adjusted by the risk tolerance.
`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.age, "age", 30, "age of the investor")
	f.Float64Var(&c.risk, "risk", 50, "risk tolerance from 0 (careful) to 100 (aggressive)")
	c.outputFlags.SetFlags(f)
}

func (c *allocateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report := renderer.NewAllocation(finguide.SuggestAllocation(c.age, c.risk), c.age, c.risk)
	return c.print(report, func() string { return renderer.RenderAllocation(report) })
}
