package agent

import (
	"github.com/etnz/finguide/docs"
	"google.golang.org/genai"
)

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// NewAdvisor creates the facilitator, in charge of the conversation with the
// user.
func NewAdvisor(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Advisor",
		Description: `The Advisor talks with the user and delegates to the experts.`,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As an advisor you are in charge of the conversation and of answering the user's request
			about personal finance: saving, investing, paying off debts, retirement accounts.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Prefer figures computed by the Calculator over your own arithmetic, and ask the Researcher
			for anything that changes over time: tax limits, rates, fund fees.

			Ask the user for the figures you are missing rather than guessing them. Answer in markdown.
			You are educational, remind the user that you are not a financial advisor when they ask
			what they should do with their money.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the expert that searches the web.
func NewResearcher(model string) *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		very well aware of personal finance products, tax rules and institutions,
		and of the latest figures: contribution limits, interest rates, fund expense ratios.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert in personal finance, you can search and find about anything related to
			financial products, tax rules, interest rates and funds. You leverage Google Search to
			ground your assertions in a solid truth, and you give the year the figures apply to.
			`),
		},
	}
}

// NewCalculator creates the expert that runs the calculators, amounts are
// displayed in 'currency'.
func NewCalculator(model, currency string) *Expert {
	lib := Calculators(currency)

	return &Expert{
		Name: "Calculator",
		Description: `This is the Calculator. It runs the guide's financial calculators:
		compound growth, fee impact, emergency fund tiers, debt payoff, asset allocation,
		Roth versus Traditional, dollar cost averaging, drawdowns and the tax year's reference figures.
		Give it all the figures of the question.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
				You are in charge of the financial calculators.
				You know how to use the Tools to compute the relevant figures. You are part of a team
				of experts, they might ask you questions in approximate language, figure out what they meant.
				Rates are fractions: 7% is 0.07. Always answer with the report of the tool and do not
				make up figures the tools did not compute.

				Here is the documentation of the calculators:

			` + must(docs.GetTopic("*"))),
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
