package montecarlo

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/montecarlo/date"
)

func TestCSVRoundTrip(t *testing.T) {
	assets := AssetUniverse{"AAA", "BBB"}
	dates := []date.Date{
		date.New(2025, time.June, 3),
		date.New(2025, time.June, 4),
	}
	rows := [][]float64{
		{0.01, -0.002},
		{-0.0005, 0.0315},
	}
	table, err := NewReturnTable(assets, dates, rows)
	if err != nil {
		t.Fatalf("NewReturnTable() failed: %v", err)
	}

	var b strings.Builder
	if err := WriteCSV(&b, table); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	back, err := ReadCSV(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v\n%s", err, b.String())
	}
	if got, want := back.Assets().String(), assets.String(); got != want {
		t.Errorf("assets = %q, want %q", got, want)
	}
	if got := back.Observations(); got != 2 {
		t.Fatalf("Observations() = %d, want 2", got)
	}
	for i := range rows {
		if back.Dates()[i] != dates[i] {
			t.Errorf("date[%d] = %s, want %s", i, back.Dates()[i], dates[i])
		}
		for j := range rows[i] {
			if got := back.At(i, j); got != rows[i][j] {
				t.Errorf("At(%d,%d) = %g, want %g", i, j, got, rows[i][j])
			}
		}
	}
}

func TestReadCSV_invalid(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{name: "bad header", in: "day,AAA\n2025-06-03,0.01\n"},
		{name: "duplicate ticker", in: "date,AAA,AAA\n2025-06-03,0.01,0.02\n"},
		{name: "bad date", in: "date,AAA\nyesterday,0.01\n"},
		{name: "bad value", in: "date,AAA\n2025-06-03,one\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tc.in)); err == nil {
				t.Errorf("ReadCSV(%q) should fail", tc.in)
			}
		})
	}
}
