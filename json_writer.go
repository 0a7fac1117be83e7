package finguide

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}

	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}

	w.WriteString(fmt.Sprintf("%q:", key))
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// Optional appends a key-value pair to the JSON object only if the provided
// value is not its type's zero value.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// Number appends a numeric value. JSON has no NaN nor Inf, they are written
// as null.
func (w *jsonObjectWriter) Number(key string, value float64) *jsonObjectWriter {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return w.Append(key, nil)
	}
	return w.Append(key, value)
}

// MarshalJSON finalizes the JSON object construction, wraps the content in
// braces, and returns the complete JSON byte slice.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')

	return final, nil
}

// MarshalJSON encodes the fund, with null for the blended yield and the
// interest of an empty fund.
func (f EmergencyFund) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	tiers := f.Tiers
	if tiers == nil {
		tiers = []FundTier{}
	}
	w.Append("tiers", tiers)
	w.Number("total", f.Total)
	w.Number("blendedYield", float64(f.BlendedYield))
	w.Number("annualInterest", f.AnnualInterest)
	return w.MarshalJSON()
}
