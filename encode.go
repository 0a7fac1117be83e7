package finguide

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Format is a file format for debts.
type Format int

const (
	JSONL Format = iota // one debt object per line
	JSON                // an array of debt objects
	YAML                // a sequence of debt mappings
)

func (f Format) String() string {
	switch f {
	case JSONL:
		return "jsonl"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format of a debts file from its extension. Unknown
// extensions are read as JSONL.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	default:
		return JSONL
	}
}

// DecodeDebts reads debts in the given format. Every debt object has the
// fields name, balance, rate and minimum:
//
//	{"name":"Card","balance":4500,"rate":0.229,"minimum":90}
func DecodeDebts(r io.Reader, format Format) ([]Debt, error) {
	var debts []Debt
	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&debts); err != nil {
			return nil, fmt.Errorf("could not decode debts: %w", err)
		}
	case YAML:
		content, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("could not read debts: %w", err)
		}
		if err := yaml.UnmarshalStrict(content, &debts); err != nil {
			return nil, fmt.Errorf("could not decode debts: %w", err)
		}
	case JSONL:
		scanner := bufio.NewScanner(r)
		line := 0
		for scanner.Scan() {
			line++
			lineBytes := scanner.Bytes()
			if len(strings.TrimSpace(string(lineBytes))) == 0 {
				continue // Skip empty lines
			}
			var d Debt
			if err := json.Unmarshal(lineBytes, &d); err != nil {
				return nil, fmt.Errorf("could not decode debt at line %d %q: %w", line, string(lineBytes), err)
			}
			debts = append(debts, d)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("could not read debts: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported debts format %v", format)
	}
	return debts, nil
}

// EncodeDebts writes debts as JSONL.
func EncodeDebts(w io.Writer, debts []Debt) error {
	enc := json.NewEncoder(w)
	for _, d := range debts {
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("could not encode debt %q: %w", d.Name, err)
		}
	}
	return nil
}

// ParseDebt parses the compact "name:balance:rate:minimum" form of a debt,
// e.g. "Card:4500:0.229:90".
func ParseDebt(s string) (Debt, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return Debt{}, fmt.Errorf("invalid debt %q, want name:balance:rate:minimum", s)
	}
	var (
		d   = Debt{Name: strings.TrimSpace(parts[0])}
		err error
	)
	fields := []struct {
		name string
		dst  *float64
	}{
		{"balance", &d.Balance},
		{"rate", &d.Rate},
		{"minimum", &d.Minimum},
	}
	for i, f := range fields {
		*f.dst, err = strconv.ParseFloat(strings.TrimSpace(parts[i+1]), 64)
		if err != nil {
			return Debt{}, fmt.Errorf("invalid %s in debt %q: %w", f.name, s, err)
		}
	}
	return d, nil
}

// String returns the compact form of the debt, see ParseDebt.
func (d Debt) String() string {
	return fmt.Sprintf("%s:%v:%v:%v", d.Name, d.Balance, d.Rate, d.Minimum)
}
