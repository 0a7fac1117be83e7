package finguide

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

var sampleDebts = []Debt{
	{Name: "Card", Balance: 4500, Rate: 0.229, Minimum: 90},
	{Name: "Car", Balance: 12000, Rate: 0.069, Minimum: 250},
}

func TestDecodeDebts(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{
			name:   "jsonl",
			format: JSONL,
			input: `{"name":"Card","balance":4500,"rate":0.229,"minimum":90}

{"name":"Car","balance":12000,"rate":0.069,"minimum":250}
`,
		},
		{
			name:   "json",
			format: JSON,
			input: `[
  {"name":"Card","balance":4500,"rate":0.229,"minimum":90},
  {"name":"Car","balance":12000,"rate":0.069,"minimum":250}
]`,
		},
		{
			name:   "yaml",
			format: YAML,
			input: `- name: Card
  balance: 4500
  rate: 0.229
  minimum: 90
- name: Car
  balance: 12000
  rate: 0.069
  minimum: 250
`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeDebts(strings.NewReader(tc.input), tc.format)
			if err != nil {
				t.Fatalf("DecodeDebts() error: %v", err)
			}
			if !slices.Equal(got, sampleDebts) {
				t.Errorf("DecodeDebts() = %+v, want %+v", got, sampleDebts)
			}
		})
	}
}

func TestDecodeDebts_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"jsonl garbage", JSONL, "{\"name\":\"Card\"}\nnot json\n"},
		{"json not an array", JSON, `{"name":"Card"}`},
		{"yaml unknown field", YAML, "- name: Card\n  apr: 0.2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeDebts(strings.NewReader(tc.input), tc.format); err == nil {
				t.Error("DecodeDebts() should fail")
			}
		})
	}
}

func TestEncodeDebts(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeDebts(&b, sampleDebts); err != nil {
		t.Fatalf("EncodeDebts() error: %v", err)
	}
	want := `{"name":"Card","balance":4500,"rate":0.229,"minimum":90}
{"name":"Car","balance":12000,"rate":0.069,"minimum":250}
`
	if b.String() != want {
		t.Errorf("EncodeDebts() = %q, want %q", b.String(), want)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"debts.json":  JSON,
		"debts.YAML":  YAML,
		"debts.yml":   YAML,
		"debts.jsonl": JSONL,
		"debts":       JSONL,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestParseDebt(t *testing.T) {
	got, err := ParseDebt("Card:4500:0.229:90")
	if err != nil {
		t.Fatalf("ParseDebt() error: %v", err)
	}
	if got != sampleDebts[0] {
		t.Errorf("ParseDebt() = %+v, want %+v", got, sampleDebts[0])
	}
	if got.String() != "Card:4500:0.229:90" {
		t.Errorf("String() = %q", got.String())
	}

	for _, bad := range []string{"Card:4500:0.229", "Card:lots:0.2:90", "Card:4500:0.2:ninety"} {
		if _, err := ParseDebt(bad); err == nil {
			t.Errorf("ParseDebt(%q) should fail", bad)
		}
	}
}
