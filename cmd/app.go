// Package cmd implements the CLI application of the guide calculators.
package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/etnz/finguide/config"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&growthCmd{}, "calculators")
	c.Register(&feesCmd{}, "calculators")
	c.Register(&emergencyCmd{}, "calculators")
	c.Register(&debtCmd{}, "calculators")
	c.Register(&allocateCmd{}, "calculators")
	c.Register(&rothCmd{}, "calculators")
	c.Register(&dcaCmd{}, "calculators")
	c.Register(&drawdownCmd{}, "calculators")

	c.Register(&limitsCmd{}, "help")
	c.Register(&topicCmd{}, "help")
	c.Register(&AssistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	Verbose  = flag.Bool("v", false, "print logs on stderr")
	currency = flag.String("currency", "USD", "currency of the amounts")

	// settings is the configuration loaded at startup, flags take precedence.
	settings config.Config

	// out is where reports are printed.
	out io.Writer = os.Stdout
)

// Setup makes 'cfg' the defaults of the global flags. It must be called
// before the flags are parsed.
func Setup(cfg config.Config) {
	settings = cfg
	*currency = cfg.Currency
	*Verbose = cfg.Verbose
}

// Currency returns the currency of the amounts.
func Currency() string { return *currency }
