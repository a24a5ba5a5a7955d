package montecarlo

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Statistics holds the historical return statistics of an asset universe:
// the per-day mean return of each asset and the unbiased sample covariance
// matrix of their returns. Derived once per run, read-only afterwards.
type Statistics struct {
	Assets AssetUniverse
	Mean   []float64     // length N, per-day mean return per asset
	Cov    *mat.SymDense // N x N
}

// Estimate derives the mean return vector and the covariance matrix from a
// historical return table. It is a pure function of the table.
//
// It fails with *InsufficientDataError when there are not strictly more
// observations than assets (the covariance matrix would be rank deficient)
// or when any asset's return series has zero variance.
func Estimate(table *ReturnTable) (*Statistics, error) {
	n := table.Assets().N()
	obs := table.Observations()
	if obs <= n {
		return nil, &InsufficientDataError{Observations: obs, Assets: n}
	}

	mean := make([]float64, n)
	col := make([]float64, obs)
	for j := 0; j < n; j++ {
		mat.Col(col, j, table.Matrix())
		mean[j] = stat.Mean(col, nil)
		if stat.Variance(col, nil) == 0 {
			return nil, &InsufficientDataError{Observations: obs, Assets: n, Ticker: table.Assets()[j]}
		}
	}

	cov := mat.NewSymDense(n, nil)
	stat.CovarianceMatrix(cov, table.Matrix(), nil)

	return &Statistics{Assets: table.Assets(), Mean: mean, Cov: cov}, nil
}
