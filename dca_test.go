package finguide

import (
	"encoding/json"
	"math"
	"testing"
)

func TestDollarCostAveraging(t *testing.T) {
	got := DollarCostAveraging(100, []float64{10, 5, 20})
	// 10 + 20 + 5 shares
	if got.Shares != 35 {
		t.Errorf("Shares = %v, want 35", got.Shares)
	}
	if got.Invested != 300 {
		t.Errorf("Invested = %v, want 300", got.Invested)
	}
	if math.Abs(got.AveragePrice-300.0/35) > 1e-9 {
		t.Errorf("AveragePrice = %v, want %v", got.AveragePrice, 300.0/35)
	}
	if got.FinalValue != 700 {
		t.Errorf("FinalValue = %v, want 700", got.FinalValue)
	}
	// the harmonic mean is below the arithmetic mean (35/3 ~ 11.67)
	if got.AveragePrice >= 35.0/3 {
		t.Errorf("AveragePrice = %v, want below the mean price", got.AveragePrice)
	}
}

func TestDollarCostAveraging_CrashAndRecovery(t *testing.T) {
	prices := []float64{
		100, 95, 85, 72, 65, 60, 58, 62, 70, 78, 85, 90,
		95, 100, 105, 108, 110, 112, 115, 118, 120, 122, 125, 128,
	}
	got := DollarCostAveraging(500, prices)
	if got.Invested != 12000 {
		t.Errorf("Invested = %v, want 12000", got.Invested)
	}
	if got.FinalValue <= got.Invested {
		t.Errorf("FinalValue = %v, want a gain over %v", got.FinalValue, got.Invested)
	}
}

func TestDollarCostAveraging_Empty(t *testing.T) {
	got := DollarCostAveraging(100, nil)
	if got.Invested != 0 || got.Shares != 0 || got.FinalValue != 0 {
		t.Errorf("DollarCostAveraging(nil) = %+v, want zero amounts", got)
	}
	if !math.IsNaN(got.AveragePrice) {
		t.Errorf("AveragePrice = %v, want NaN", got.AveragePrice)
	}
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if want := `{"invested":0,"shares":0,"averagePrice":null,"finalValue":0}`; string(b) != want {
		t.Errorf("json.Marshal() = %s, want %s", b, want)
	}
}
