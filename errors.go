package montecarlo

import "fmt"

// All errors below are unrecoverable at the point raised: the engine never
// attempts remediation (it does not drop collinear assets, nor return
// partial results) and surfaces them to the caller immediately.

// InsufficientDataError reports a historical return table too small or too
// degenerate to estimate a usable covariance matrix.
type InsufficientDataError struct {
	Observations int    // number of historical observations T
	Assets       int    // number of assets N
	Ticker       string // set when a single asset series has zero variance
}

func (e *InsufficientDataError) Error() string {
	if e.Ticker != "" {
		return fmt.Sprintf("insufficient data: asset %q has zero variance over %d observations", e.Ticker, e.Observations)
	}
	return fmt.Sprintf("insufficient data: %d observations for %d assets (need more observations than assets)", e.Observations, e.Assets)
}

// NonPositiveDefiniteError reports a covariance matrix that failed the
// Cholesky factorization, typically because of duplicate or perfectly
// collinear assets.
type NonPositiveDefiniteError struct {
	Size int // dimension of the covariance matrix
}

func (e *NonPositiveDefiniteError) Error() string {
	return fmt.Sprintf("covariance matrix (%dx%d) is not positive definite: degenerate or collinear assets", e.Size, e.Size)
}

// InvalidConfigurationError reports an invalid simulation configuration.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// EmptyResultError reports a summarization requested over zero scenarios.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string {
	return "empty result: no scenario was simulated"
}
