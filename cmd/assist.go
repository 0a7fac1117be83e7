package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finguide/agent"
	"github.com/etnz/finguide/config"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// AssistCmd is the subcommand for the AI assistant.
type AssistCmd struct {
	model string
}

// Name returns the name of the command.
func (*AssistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*AssistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }

// Usage returns a long-form usage string.
func (*AssistCmd) Usage() string {
	return `guide assist [-model <model>] [<question>]

  Start an interactive session with the AI assistant. It needs a Gemini API
  key in the ` + config.EnvAPIKey + ` environment variable.
`
}

// SetFlags sets the flags for the command.
func (c *AssistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Gemini model, "+config.EnvModel+" by default")
}

// Execute executes the command.
func (c *AssistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	if settings.APIKey == "" {
		fmt.Fprintf(os.Stderr, "Error: %s is not set\n", config.EnvAPIKey)
		return subcommands.ExitFailure
	}
	model := c.model
	if model == "" {
		model = settings.Model
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	calculator := agent.NewCalculator(model, Currency())
	researcher := agent.NewResearcher(model)
	a := agent.New(os.Stdout, os.Stdin, model, calculator, researcher)
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100)); err == nil {
		a.Markdown = func(md string) string {
			s, err := r.Render(md)
			if err != nil {
				return md
			}
			return s
		}
	}

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
