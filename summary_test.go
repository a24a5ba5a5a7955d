package montecarlo

import (
	"errors"
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	terminal := []float64{50, 40, 10, 30, 20} // unsorted on purpose
	summary, err := Summarize(terminal, 25)
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}

	// Percentiles interpolate linearly between order statistics at
	// fractional rank p/100·(n-1).
	testCases := []struct {
		name string
		got  float64
		want float64
	}{
		{name: "median", got: summary.Median, want: 30},
		{name: "percentile 5", got: summary.Percentile5, want: 12}, // rank 0.2 between 10 and 20
		{name: "percentile 1", got: summary.Percentile1, want: 10.4},
	}
	for _, tc := range testCases {
		if math.Abs(tc.got-tc.want) > 1e-12 {
			t.Errorf("%s = %g, want %g", tc.name, tc.got, tc.want)
		}
	}

	// three of five scenarios end strictly above 25
	if want := Percent(60); !summary.Profitable.Equal(want) {
		t.Errorf("Profitable = %s, want %s", summary.Profitable, want)
	}
	if summary.Scenarios != 5 {
		t.Errorf("Scenarios = %d, want 5", summary.Scenarios)
	}
}

func TestSummarize_percentileMonotonicity(t *testing.T) {
	terminal := []float64{104, 97, 113, 88, 101, 95, 120, 99, 102, 100}
	summary, err := Summarize(terminal, 100)
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if summary.Percentile1 > summary.Percentile5 {
		t.Errorf("1st percentile %g > 5th percentile %g", summary.Percentile1, summary.Percentile5)
	}
	if summary.Percentile5 > summary.Median {
		t.Errorf("5th percentile %g > median %g", summary.Percentile5, summary.Median)
	}
}

func TestSummarize_profitIsStrict(t *testing.T) {
	// Terminal wealth exactly at the starting amount is not a profit.
	terminal := []float64{1000, 1000, 1000, 1000}
	summary, err := Summarize(terminal, 1000)
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if !summary.Profitable.Equal(0) {
		t.Errorf("Profitable = %s, want 0.00%%", summary.Profitable)
	}
}

func TestSummarize_empty(t *testing.T) {
	_, err := Summarize(nil, 1000)
	var empty *EmptyResultError
	if !errors.As(err, &empty) {
		t.Fatalf("Summarize() error = %v, want *EmptyResultError", err)
	}
}

func TestSummarize_singleScenario(t *testing.T) {
	summary, err := Summarize([]float64{1100}, 1000)
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	for _, v := range []float64{summary.Median, summary.Percentile5, summary.Percentile1} {
		if v != 1100 {
			t.Errorf("percentile of a single sample = %g, want 1100", v)
		}
	}
	if !summary.Profitable.Equal(100) {
		t.Errorf("Profitable = %s, want 100.00%%", summary.Profitable)
	}
}
