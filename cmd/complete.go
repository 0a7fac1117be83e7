package cmd

import (
	"flag"

	"github.com/etnz/finguide"
	"github.com/etnz/finguide/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors are the value predictors of flags, by subcommand.
var flagPredictors = map[string]map[string]complete.Predictor{
	"debt": {
		"f": predict.Files("*"),
		"m": predict.Set{"avalanche", "snowball", "compare"},
	},
	"fees": {
		"a": predict.Set(fundTickers()),
		"b": predict.Set(fundTickers()),
	},
}

func fundTickers() []string {
	list := make([]string, 0, len(finguide.FundExamples))
	for _, f := range finguide.FundExamples {
		list = append(list, f.Ticker)
	}
	return list
}

// Completion returns the shell completion of the commander's subcommands
// and flags.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagsOf(c.VisitAll, nil),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		sub := &complete.Command{Flags: flagsOf(fs.VisitAll, flagPredictors[sc.Name()])}
		if sc.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(topics)
			}
		}
		root.Sub[sc.Name()] = sub
	})
	return root
}

// flagsOf predicts a value for every flag but booleans.
func flagsOf(visit func(func(*flag.Flag)), predictors map[string]complete.Predictor) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	visit(func(f *flag.Flag) {
		if p, ok := predictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
