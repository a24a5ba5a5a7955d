// Package montecarlo estimates the distribution of future portfolio value
// by Monte Carlo simulation driven by historical asset return statistics.
//
// The core pipeline flows strictly forward:
//   - Estimate: derive the mean return vector and the covariance matrix
//     from a historical return table.
//   - Factorize: compute the Cholesky factor of the covariance matrix, the
//     transform that imposes the empirical correlation and volatility
//     structure onto independent random draws.
//   - Simulate: generate many independent scenarios of correlated synthetic
//     daily returns, aggregate them into portfolio daily returns, and
//     compound them into wealth trajectories.
//   - Summarize: compute percentiles and profit probability over the
//     terminal wealth values across all scenarios.
//
// Historical prices come from a market data provider (see the eodhd
// subpackage), and results are rendered by the renderer subpackage. This
// package serves as the foundational logic for the `mcs` command-line tool.
package montecarlo
