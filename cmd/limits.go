package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finguide"
	"github.com/etnz/finguide/renderer"
	"github.com/google/subcommands"
)

// limitsCmd holds the flags for the 'limits' subcommand.
type limitsCmd struct {
	outputFlags
	age    int
	income float64
}

// limitsReport is the JSON report of the reference figures.
type limitsReport struct {
	TaxYear            int                          `json:"taxYear"`
	ContributionLimits []finguide.ContributionLimit `json:"contributionLimits"`
	RothIncomeLimits   []finguide.RothIncomeLimit   `json:"rothIncomeLimits"`
	Funds              []finguide.Fund              `json:"funds"`
}

func (*limitsCmd) Name() string { return "limits" }
func (*limitsCmd) Synopsis() string {
	return "show the contribution limits and example funds of the tax year"
}
func (*limitsCmd) Usage() string {
	return `guide limits [-age <age>] [-income <income>] [-json] [-path <jsonpath>]

  Prints the contribution limits, the Roth IRA income limits and the example funds.
`
}

func (c *limitsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.age, "age", 0, "age, to show the limits including catch-up contributions")
	f.Float64Var(&c.income, "income", 0, "modified adjusted gross income, to compute the allowed Roth IRA contribution")
	c.outputFlags.SetFlags(f)
}

func (c *limitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report := limitsReport{
		TaxYear:            finguide.TaxYear,
		ContributionLimits: finguide.ContributionLimits,
		RothIncomeLimits:   finguide.RothIncomeLimits,
		Funds:              finguide.FundExamples,
	}
	return c.print(report, func() string { return renderer.LimitsMarkdown(c.age, c.income, Currency()) })
}
