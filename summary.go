package montecarlo

import (
	"math"
	"sort"
)

// Summary holds the distributional statistics of the terminal wealth values
// across all scenarios of a run.
type Summary struct {
	StartingAmount float64
	Scenarios      int
	Median         float64 // 50th percentile of terminal wealth
	Percentile5    float64 // exceeded with 95% probability
	Percentile1    float64 // exceeded with 99% probability
	Profitable     Percent // scenarios strictly above the starting amount
}

// Summarize computes the distributional statistics over the terminal wealth
// values. It fails with *EmptyResultError when no scenario was simulated.
//
// A scenario counts as profitable only when its terminal wealth is strictly
// greater than the starting amount.
func Summarize(terminal []float64, startingAmount float64) (*Summary, error) {
	if len(terminal) == 0 {
		return nil, &EmptyResultError{}
	}

	sorted := append([]float64(nil), terminal...)
	sort.Float64s(sorted)

	profitable := 0
	for _, amount := range terminal {
		if amount > startingAmount {
			profitable++
		}
	}

	return &Summary{
		StartingAmount: startingAmount,
		Scenarios:      len(terminal),
		Median:         percentile(sorted, 50),
		Percentile5:    percentile(sorted, 5),
		Percentile1:    percentile(sorted, 1),
		Profitable:     Percent(100 * float64(profitable) / float64(len(terminal))),
	}, nil
}

// percentile computes the p-th percentile of an ascending sample using
// linear interpolation between order statistics: the value at fractional
// rank p/100·(n-1).
func percentile(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lo := math.Floor(rank)
	v := sorted[int(lo)]
	if frac := rank - lo; frac > 0 {
		v += frac * (sorted[int(lo)+1] - v)
	}
	return v
}
