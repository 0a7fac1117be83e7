package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// outputFlags select how a calculator prints its report.
type outputFlags struct {
	json bool
	path string
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&o.json, "json", false, "print the report as JSON")
	f.StringVar(&o.path, "path", "", "print only the part of the JSON report selected by a JSONPath expression, e.g. '$.final.amount'. Implies -json.")
}

// print prints the report, as JSON or as the markdown returned by 'markdown'.
func (o *outputFlags) print(report any, markdown func() string) subcommands.ExitStatus {
	if !o.json && o.path == "" {
		printMarkdown(markdown())
		return subcommands.ExitSuccess
	}
	data, err := encodeJSON(report, o.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(out, string(data))
	return subcommands.ExitSuccess
}

// encodeJSON encodes the report, or the value selected by 'path' in it.
// Selected strings are returned unquoted.
func encodeJSON(report any, path string) ([]byte, error) {
	if path == "" {
		return json.MarshalIndent(report, "", "  ")
	}
	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("could not encode report: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("could not decode report: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("could not select %q: %w", path, err)
	}
	if s, ok := jval.(string); ok {
		return []byte(s), nil
	}
	return json.Marshal(jval)
}

// printMarkdown prints markdown formatted for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("could not create markdown renderer: %v", err)
		fmt.Fprint(out, md)
		return
	}
	formatted, err := r.Render(md)
	if err != nil {
		log.Printf("could not render markdown: %v", err)
		fmt.Fprint(out, md)
		return
	}
	fmt.Fprint(out, formatted)
}
