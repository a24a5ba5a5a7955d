package montecarlo

import (
	"math"
	"testing"
	"time"

	"github.com/etnz/montecarlo/date"
)

func TestTableFromPrices(t *testing.T) {
	assets := AssetUniverse{"AAA", "BBB"}
	d := func(day int) date.Date { return date.New(2025, time.June, day) }

	// BBB has no quote on June 3: the day is dropped for both assets and
	// the next AAA return spans June 2 to June 4.
	prices := []PriceSeries{
		{d(2): 100, d(3): 104, d(4): 110, d(5): 99},
		{d(2): 50, d(4): 51, d(5): 51.51},
	}

	table, err := TableFromPrices(assets, prices)
	if err != nil {
		t.Fatalf("TableFromPrices() failed: %v", err)
	}

	if got := table.Observations(); got != 2 {
		t.Fatalf("Observations() = %d, want 2", got)
	}
	wantDates := []date.Date{d(4), d(5)}
	for i, want := range wantDates {
		if table.Dates()[i] != want {
			t.Errorf("Dates()[%d] = %s, want %s", i, table.Dates()[i], want)
		}
	}
	want := [][]float64{
		{0.10, 0.02},
		{-0.10, 0.01},
	}
	for i, row := range want {
		for j, w := range row {
			if got := table.At(i, j); math.Abs(got-w) > 1e-9 {
				t.Errorf("At(%d,%d) = %g, want %g", i, j, got, w)
			}
		}
	}
}

func TestTableFromPrices_errors(t *testing.T) {
	d := func(day int) date.Date { return date.New(2025, time.June, day) }

	testCases := []struct {
		name   string
		assets AssetUniverse
		prices []PriceSeries
	}{
		{
			name:   "series count mismatch",
			assets: AssetUniverse{"AAA", "BBB"},
			prices: []PriceSeries{{d(2): 100}},
		},
		{
			name:   "no common days",
			assets: AssetUniverse{"AAA", "BBB"},
			prices: []PriceSeries{{d(2): 100, d(3): 101}, {d(4): 50, d(5): 51}},
		},
		{
			name:   "zero price",
			assets: AssetUniverse{"AAA"},
			prices: []PriceSeries{{d(2): 0, d(3): 101}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := TableFromPrices(tc.assets, tc.prices); err == nil {
				t.Error("TableFromPrices() should fail")
			}
		})
	}
}
