package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finguide"
	md "github.com/nao1215/markdown"
)

// LimitsMarkdown renders the reference figures of the tax year: contribution
// limits at 'age', Roth IRA income limits and example funds. When income is
// positive the allowed Roth IRA contribution is computed for each filing
// status.
func LimitsMarkdown(age int, income float64, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Reference Figures for %d", finguide.TaxYear))

	doc.H2("Contribution Limits")
	limits := md.TableSet{Header: []string{"Account", "Standard", "With Catch-Up", "Catch-Up Age"}}
	if age > 0 {
		limits.Header = append(limits.Header, fmt.Sprintf("At %d", age))
	}
	var ira float64
	for _, l := range finguide.ContributionLimits {
		row := []string{
			l.Account,
			finguide.M(l.Standard, currency).String(),
			finguide.M(l.CatchUp, currency).String(),
			fmt.Sprint(l.CatchUpAge),
		}
		if age > 0 {
			row = append(row, finguide.M(l.Limit(age), currency).String())
		}
		if l.Account == "IRA" {
			ira = l.Limit(age)
		}
		limits.Rows = append(limits.Rows, row)
	}
	doc.Table(limits)

	doc.H2("Roth IRA Income Limits")
	roth := md.TableSet{Header: []string{"Filing Status", "Phase-Out Start", "Phase-Out End"}}
	if income > 0 {
		roth.Header = append(roth.Header, "Allowed Contribution")
	}
	for _, l := range finguide.RothIncomeLimits {
		row := []string{
			l.Filing,
			finguide.M(l.PhaseOutStart, currency).String(),
			finguide.M(l.PhaseOutEnd, currency).String(),
		}
		if income > 0 {
			row = append(row, finguide.M(ira*l.AllowedFraction(income), currency).String())
		}
		roth.Rows = append(roth.Rows, row)
	}
	doc.Table(roth)

	doc.H2("Example Funds")
	funds := md.TableSet{Header: []string{"Ticker", "Name", "Expense Ratio"}}
	for _, f := range finguide.FundExamples {
		funds.Rows = append(funds.Rows, []string{f.Ticker, f.Name, finguide.Percent(f.ExpenseRatio * 100).String()})
	}
	doc.Table(funds)

	doc.PlainText("Limits change every year, check irs.gov.")

	return doc.String()
}
