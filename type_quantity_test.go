package finguide

import (
	"encoding/json"
	"math"
	"testing"
)

func TestQuantity_String(t *testing.T) {
	tests := []struct {
		q    Quantity
		want string
	}{
		{Q(12), "12"},
		{Q(100.0 / 3), "33.3333"},
		{Q(0.5), "0.5"},
		{Q(math.Inf(1)), "N/A"},
		{Q(math.NaN()), "N/A"},
	}
	for _, tc := range tests {
		if got := tc.q.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestQuantity_MarshalJSON(t *testing.T) {
	got, err := json.Marshal([]Quantity{Q(2.5), Q(math.Inf(1))})
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(got) != "[2.5,null]" {
		t.Errorf("json.Marshal() = %s, want [2.5,null]", got)
	}
}

func TestQuantity_Add(t *testing.T) {
	if got := Q(1.5).Add(Q(2)); !got.Equal(Q(3.5)) {
		t.Errorf("Add() = %v, want 3.5", got)
	}
	if got := Q(1).Add(Q(math.NaN())); got.IsAvailable() {
		t.Errorf("Add() with N/A = %v, want N/A", got)
	}
}
