package agent

import (
	"context"
	"fmt"

	"github.com/etnz/finguide"
	"github.com/etnz/finguide/renderer"
	"google.golang.org/genai"
)

func numberParam(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: description}
}

func integerParam(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger, Description: description}
}

func params(required []string, properties map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: properties, Required: required}
}

var report = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown report of the computation.",
}

// calculator is a Function running a formula and returning its markdown
// report.
func calculator(name, description string, parameters *genai.Schema, run func(p *argParser) (string, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  parameters,
			Response:    report,
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			p := &argParser{args: args}
			md, err := run(p)
			if p.err != nil {
				err = p.err
			}
			if err != nil {
				return failure(id, name, err)
			}
			return output(id, name, md)
		},
	}
}

// Calculators returns the calculators as functions for a model, amounts
// are displayed in 'currency'.
func Calculators(currency string) []*Func {
	return []*Func{
		calculator("CompoundGrowth",
			`Simulates an investment compounded monthly, with a monthly contribution, and reports the balance at the end of every year.`,
			params([]string{"principal", "years"}, map[string]*genai.Schema{
				"principal":           numberParam("The initial amount invested."),
				"monthlyContribution": numberParam("The amount added every month, 0 by default."),
				"annualRate":          numberParam("The annual return as a fraction, 0.07 by default."),
				"years":               integerParam("The number of years."),
			}),
			func(p *argParser) (string, error) {
				principal := p.number("principal", 0)
				contribution := p.number("monthlyContribution", 0)
				rate := p.number("annualRate", 0.07)
				years := p.years("years")
				series := finguide.CompoundGrowth(principal, contribution, rate, years)
				return renderer.RenderGrowth(renderer.NewGrowth(series, principal, contribution, rate, currency)), nil
			}),

		calculator("FeeImpact",
			`Compares the growth of the same investment in two funds with different expense ratios.`,
			params([]string{"principal", "years", "expenseRatioA", "expenseRatioB"}, map[string]*genai.Schema{
				"principal":     numberParam("The amount invested."),
				"annualReturn":  numberParam("The annual return before fees as a fraction, 0.07 by default."),
				"years":         integerParam("The number of years."),
				"expenseRatioA": numberParam("The expense ratio of fund A as a fraction, 0.01 is 1%."),
				"expenseRatioB": numberParam("The expense ratio of fund B as a fraction."),
			}),
			func(p *argParser) (string, error) {
				principal := p.number("principal", 0)
				annualReturn := p.number("annualReturn", 0.07)
				years := p.years("years")
				a := finguide.Fund{Name: "Fund A", ExpenseRatio: p.number("expenseRatioA", 0)}
				b := finguide.Fund{Name: "Fund B", ExpenseRatio: p.number("expenseRatioB", 0)}
				points := finguide.FeeImpact(principal, annualReturn, years, a.ExpenseRatio, b.ExpenseRatio)
				return renderer.RenderFees(renderer.NewFees(points, principal, annualReturn, a, b, currency)), nil
			}),

		calculator("EmergencyFund",
			`Splits an emergency fund of some months of expenses between checking, a high-yield savings account and T-Bills.`,
			params([]string{"monthlyExpenses", "months"}, map[string]*genai.Schema{
				"monthlyExpenses": numberParam("The monthly expenses."),
				"months":          numberParam("The number of months of expenses to keep, usually 3 to 12."),
			}),
			func(p *argParser) (string, error) {
				expenses := p.number("monthlyExpenses", 0)
				months := p.number("months", 6)
				fund := finguide.EmergencyFundTiers(expenses, months)
				return renderer.RenderEmergency(renderer.NewEmergency(fund, expenses, months, currency)), nil
			}),

		calculator("DebtPayoff",
			`Simulates paying off debts month by month with the avalanche method (highest rate first), the snowball method (smallest balance first) or compares both.`,
			params([]string{"debts"}, map[string]*genai.Schema{
				"debts": {
					Type:        genai.TypeArray,
					Description: "The debts to pay off.",
					Items: params([]string{"name", "balance", "rate", "minimum"}, map[string]*genai.Schema{
						"name":    {Type: genai.TypeString, Description: "A unique name for the debt."},
						"balance": numberParam("The balance owed."),
						"rate":    numberParam("The annual interest rate as a fraction."),
						"minimum": numberParam("The minimum monthly payment."),
					}),
				},
				"extraPayment": numberParam("The amount paid every month on top of the minimums, 0 by default."),
				"method": {
					Type:        genai.TypeString,
					Description: "avalanche, snowball or compare. compare by default.",
					Enum:        []string{"avalanche", "snowball", "compare"},
				},
			}),
			func(p *argParser) (string, error) {
				debts := p.debts("debts")
				extra := p.number("extraPayment", 0)
				method, _ := p.args["method"].(string)
				if p.err != nil {
					return "", nil
				}
				if err := finguide.ValidateDebts(debts); err != nil {
					return "", err
				}
				if method == "" || method == "compare" {
					c := finguide.CompareMethods(debts, extra)
					return renderer.RenderDebtComparison(renderer.NewDebtComparison(c, debts, extra, currency)), nil
				}
				m, err := finguide.ParsePayoffMethod(method)
				if err != nil {
					return "", err
				}
				payoff := finguide.SimulateDebtPayoff(debts, extra, m)
				return renderer.RenderDebt(renderer.NewDebt(payoff, debts, extra, m, currency)), nil
			}),

		calculator("SuggestAllocation",
			`Suggests a stock and bond allocation from the age and the risk tolerance.`,
			params([]string{"age"}, map[string]*genai.Schema{
				"age":           numberParam("The age of the investor."),
				"riskTolerance": numberParam("From 0, the most careful, to 100, the most aggressive. 50 by default."),
			}),
			func(p *argParser) (string, error) {
				age := p.number("age", 0)
				risk := p.number("riskTolerance", 50)
				return renderer.RenderAllocation(renderer.NewAllocation(finguide.SuggestAllocation(age, risk), age, risk)), nil
			}),

		calculator("RothVsTraditional",
			`Compares the after-tax value of yearly contributions in a Roth and in a Traditional retirement account.`,
			params([]string{"annualContribution", "currentTaxRate", "futureTaxRate", "years"}, map[string]*genai.Schema{
				"annualContribution": numberParam("The amount contributed every year, before tax."),
				"currentTaxRate":     numberParam("The marginal tax rate today, as a fraction."),
				"futureTaxRate":      numberParam("The expected tax rate in retirement, as a fraction."),
				"annualReturn":       numberParam("The annual return as a fraction, 0.07 by default."),
				"years":              integerParam("The number of years until retirement."),
			}),
			func(p *argParser) (string, error) {
				c := p.number("annualContribution", 0)
				now := p.number("currentTaxRate", 0)
				later := p.number("futureTaxRate", 0)
				r := p.number("annualReturn", 0.07)
				years := p.years("years")
				res := finguide.RothVsTraditional(c, now, later, r, years)
				return renderer.RenderRoth(renderer.NewRoth(res, c, now, later, r, years, currency)), nil
			}),

		calculator("DollarCostAveraging",
			`Invests the same amount at each price of a series and reports the shares bought and the average cost.`,
			params([]string{"amount", "prices"}, map[string]*genai.Schema{
				"amount": numberParam("The amount invested at every price."),
				"prices": {Type: genai.TypeArray, Description: "The price at each period.", Items: numberParam("A price.")},
			}),
			func(p *argParser) (string, error) {
				amount := p.number("amount", 0)
				prices := p.numbers("prices")
				if len(prices) == 0 && p.err == nil {
					return "", fmt.Errorf("argument %q must not be empty", "prices")
				}
				return renderer.RenderDCA(renderer.NewDCA(finguide.DollarCostAveraging(amount, prices), amount, prices, currency)), nil
			}),

		calculator("Drawdowns",
			`Lists the declines of a value series from its running peak.`,
			params([]string{"values"}, map[string]*genai.Schema{
				"values": {Type: genai.TypeArray, Description: "The values of the series, in order.", Items: numberParam("A value.")},
			}),
			func(p *argParser) (string, error) {
				values := p.numbers("values")
				return renderer.RenderDrawdowns(renderer.NewDrawdowns(finguide.Drawdowns(values), values)), nil
			}),

		calculator("ReferenceFigures",
			fmt.Sprintf(`Lists the contribution limits of %d, the Roth IRA income limits and example index funds with their expense ratios.`, finguide.TaxYear),
			params(nil, map[string]*genai.Schema{
				"age":    integerParam("The age of the investor, to compute catch-up contributions."),
				"income": numberParam("The modified adjusted gross income, to compute the allowed Roth IRA contribution."),
			}),
			func(p *argParser) (string, error) {
				return renderer.LimitsMarkdown(p.integer("age", 0), p.number("income", 0), currency), nil
			}),
	}
}
