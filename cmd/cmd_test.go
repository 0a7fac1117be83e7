package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// run executes a subcommand with 'args' and returns what it printed.
func run(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	var b bytes.Buffer
	old := out
	out = &b
	defer func() { out = old }()
	status := c.Execute(context.Background(), fs)
	return b.String(), status
}

func TestCalculatorCommands(t *testing.T) {
	debts := filepath.Join(t.TempDir(), "debts.jsonl")
	content := `{"name":"Loan","balance":1000,"rate":0,"minimum":100}
{"name":"Card","balance":300,"rate":0,"minimum":50}
`
	if err := os.WriteFile(debts, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cmd  subcommands.Command
		args []string
		want string
	}{
		{"growth", &growthCmd{}, []string{"-p", "1000", "-c", "100", "-r", "0", "-y", "2", "-path", "$.final.amount"}, "3400"},
		{"fees", &feesCmd{}, []string{"-a", "VTI", "-b", "VTI", "-path", "$.cost.amount"}, "0"},
		{"fees ratio", &feesCmd{}, []string{"-a", "0.01", "-path", "$.fundA.label"}, "Fund A"},
		{"emergency", &emergencyCmd{}, []string{"-e", "2000", "-m", "6", "-path", "$.total.amount"}, "12000"},
		{"debt flags", &debtCmd{}, []string{"-d", "Loan:1000:0:100", "-d", "Card:300:0:50", "-x", "100", "-m", "snowball", "-path", "$.months"}, "5"},
		{"debt file", &debtCmd{}, []string{"-f", debts, "-x", "100", "-m", "snowball", "-path", "$.payoffOrder"}, `["Card","Loan"]`},
		{"debt compare", &debtCmd{}, []string{"-f", debts, "-x", "100", "-m", "compare", "-path", "$.snowball.months"}, "5"},
		{"allocate", &allocateCmd{}, []string{"-age", "30", "-risk", "50", "-path", "$.bonds"}, "20"},
		{"roth", &rothCmd{}, []string{"-c", "1000", "-now", "0.3", "-later", "0.2", "-r", "0", "-y", "2", "-path", "$.winner"}, "Traditional"},
		{"dca", &dcaCmd{}, []string{"-a", "100", "-path", "$.invested.amount", "10", "20"}, "200"},
		{"drawdown", &drawdownCmd{}, []string{"-path", "$.underwater", "100", "80", "90", "120", "60"}, "true"},
		{"limits", &limitsCmd{}, []string{"-path", "$.funds[0].ticker"}, "VT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, status := run(t, tc.cmd, tc.args...)
			if status != subcommands.ExitSuccess {
				t.Fatalf("%s exited with %v", tc.name, status)
			}
			if strings.TrimSpace(got) != tc.want {
				t.Errorf("%s printed %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestCalculatorCommands_Errors(t *testing.T) {
	tests := []struct {
		name string
		cmd  subcommands.Command
		args []string
		want subcommands.ExitStatus
	}{
		{"unknown fund", &feesCmd{}, []string{"-a", "NOPE"}, subcommands.ExitUsageError},
		{"no debt", &debtCmd{}, nil, subcommands.ExitUsageError},
		{"invalid debt", &debtCmd{}, []string{"-d", "Card:300:0:0"}, subcommands.ExitUsageError},
		{"unknown method", &debtCmd{}, []string{"-d", "Card:300:0:10", "-m", "random"}, subcommands.ExitUsageError},
		{"missing file", &debtCmd{}, []string{"-f", filepath.Join(t.TempDir(), "missing.jsonl")}, subcommands.ExitFailure},
		{"no price", &dcaCmd{}, nil, subcommands.ExitUsageError},
		{"bad value", &drawdownCmd{}, []string{"1", "two"}, subcommands.ExitUsageError},
		{"bad path", &growthCmd{}, []string{"-path", "$.nope"}, subcommands.ExitFailure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, status := run(t, tc.cmd, tc.args...); status != tc.want {
				t.Errorf("%s exited with %v, want %v", tc.name, status, tc.want)
			}
		})
	}
}

func TestGrowthMarkdown(t *testing.T) {
	got, status := run(t, &growthCmd{}, "-p", "1000", "-c", "100", "-r", "0", "-y", "2")
	if status != subcommands.ExitSuccess {
		t.Fatalf("growth exited with %v", status)
	}
	if !strings.Contains(got, "3,400.00") {
		t.Errorf("growth report does not contain the final balance:\n%s", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	report := map[string]any{"name": "Card", "values": []int{1, 2}}
	tests := []struct {
		path string
		want string
	}{
		{"", "{\n  \"name\": \"Card\",\n  \"values\": [\n    1,\n    2\n  ]\n}"},
		{"$.name", "Card"},
		{"$.values", "[1,2]"},
		{"$.values[1]", "2"},
	}
	for _, tc := range tests {
		got, err := encodeJSON(report, tc.path)
		if err != nil {
			t.Errorf("encodeJSON(%q) error: %v", tc.path, err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("encodeJSON(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestDebtsFlag(t *testing.T) {
	var d debtsFlag
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&d, "d", "")
	if err := fs.Parse([]string{"-d", "Card:4500:0.229:90", "-d", "Car:12000:0.069:250"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(d) != 2 || d[0].Name != "Card" || d[1].Minimum != 250 {
		t.Errorf("debts = %+v", d)
	}
	if got := d.String(); got != "Card:4500:0.229:90,Car:12000:0.069:250" {
		t.Errorf("String() = %q", got)
	}
	if err := d.Set("Card"); err == nil {
		t.Error("Set() accepted an invalid debt")
	}
}

func TestParseFund(t *testing.T) {
	f, err := parseFund("vti", "Fund A")
	if err != nil || f.Ticker != "VTI" || f.ExpenseRatio != 0.0003 {
		t.Errorf("parseFund(vti) = %+v, %v", f, err)
	}
	f, err = parseFund("0.01", "Fund A")
	if err != nil || f.Name != "Fund A" || f.ExpenseRatio != 0.01 {
		t.Errorf("parseFund(0.01) = %+v, %v", f, err)
	}
	if _, err := parseFund("cheap", "Fund A"); err == nil || !strings.Contains(err.Error(), "VTI") {
		t.Errorf("parseFund(cheap) error = %v, want the list of tickers", err)
	}
}

func TestCompletion(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("guide", flag.ContinueOnError), "guide")
	Register(c)
	comp := Completion(c)
	for _, name := range []string{"growth", "debt", "topic", "assist"} {
		if _, ok := comp.Sub[name]; !ok {
			t.Errorf("no completion for %q", name)
		}
	}
	if _, ok := comp.Sub["debt"].Flags["m"]; !ok {
		t.Error("no completion for debt -m")
	}
	if comp.Sub["topic"].Args == nil {
		t.Error("no completion for topics")
	}
}

func TestTopicList(t *testing.T) {
	got, status := run(t, &topicCmd{}, "-list")
	if status != subcommands.ExitSuccess {
		t.Fatalf("topic -list exited with %v", status)
	}
	if !strings.HasPrefix(got, "growth\tcompound growth") {
		t.Errorf("topic -list printed:\n%s", got)
	}
	if _, status := run(t, &topicCmd{}, "nope"); status != subcommands.ExitUsageError {
		t.Errorf("topic nope exited with %v, want %v", status, subcommands.ExitUsageError)
	}
}
