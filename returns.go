package montecarlo

import (
	"fmt"
	"sort"

	"github.com/etnz/montecarlo/date"
	"gonum.org/v1/gonum/mat"
)

// PriceSeries holds the daily closing prices of a single asset.
type PriceSeries map[date.Date]float64

// ReturnTable is a table of T observations by N assets of per-day fractional
// returns. It contains no missing values: by construction only trading days
// quoted by every asset contribute a row. It is computed once from raw
// prices and never mutated.
type ReturnTable struct {
	assets AssetUniverse
	dates  []date.Date // one per row, ascending
	values *mat.Dense  // T x N
}

// NewReturnTable builds a return table from raw rows. Rows are indexed like
// dates, columns like assets.
func NewReturnTable(assets AssetUniverse, dates []date.Date, rows [][]float64) (*ReturnTable, error) {
	if len(rows) != len(dates) {
		return nil, fmt.Errorf("return table has %d rows for %d dates", len(rows), len(dates))
	}
	if len(rows) == 0 {
		return nil, &InsufficientDataError{Observations: 0, Assets: assets.N()}
	}
	values := mat.NewDense(len(rows), assets.N(), nil)
	for i, row := range rows {
		if len(row) != assets.N() {
			return nil, fmt.Errorf("return table row %d has %d values for %d assets", i, len(row), assets.N())
		}
		values.SetRow(i, row)
	}
	return &ReturnTable{assets: assets, dates: dates, values: values}, nil
}

// TableFromPrices builds the historical return table from per-asset price
// series. Trading days missing from any asset are dropped entirely, then
// daily fractional returns are computed over consecutive remaining days.
func TableFromPrices(assets AssetUniverse, prices []PriceSeries) (*ReturnTable, error) {
	if len(prices) != assets.N() {
		return nil, fmt.Errorf("got %d price series for %d assets", len(prices), assets.N())
	}

	// Keep only the days quoted by every asset.
	var common []date.Date
	for day := range prices[0] {
		quoted := true
		for _, series := range prices[1:] {
			if _, ok := series[day]; !ok {
				quoted = false
				break
			}
		}
		if quoted {
			common = append(common, day)
		}
	}
	if len(common) < 2 {
		return nil, &InsufficientDataError{Observations: len(common), Assets: assets.N()}
	}
	sort.Slice(common, func(i, j int) bool { return common[i].Before(common[j]) })

	// One return row per pair of consecutive common days.
	days := common[1:]
	values := mat.NewDense(len(days), assets.N(), nil)
	for j, series := range prices {
		for i, day := range days {
			prev := series[common[i]]
			if prev == 0 {
				return nil, fmt.Errorf("asset %q has a zero price on %s", assets[j], common[i])
			}
			values.Set(i, j, series[day]/prev-1)
		}
	}
	return &ReturnTable{assets: assets, dates: days, values: values}, nil
}

// Assets returns the ordered asset universe indexing the table columns.
func (t *ReturnTable) Assets() AssetUniverse { return t.assets }

// Observations returns the number of rows T.
func (t *ReturnTable) Observations() int { return len(t.dates) }

// Dates returns the trading days indexing the table rows, ascending.
func (t *ReturnTable) Dates() []date.Date { return t.dates }

// Matrix returns the T x N return matrix.
func (t *ReturnTable) Matrix() mat.Matrix { return t.values }

// At returns the return of asset column j on row i.
func (t *ReturnTable) At(i, j int) float64 { return t.values.At(i, j) }
