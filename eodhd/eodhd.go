// Package eodhd acquires historical market data from the eodhd.com API and
// turns it into the historical return table consumed by the simulation
// engine.
package eodhd

import (
	"fmt"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/date"
	"github.com/shopspring/decimal"
)

// base address of the eodhd.com API, a variable so tests can point it to a
// local server.
var baseURL = "https://eodhd.com/api"

// FetchReturns fetches daily adjusted closes for every asset of the
// universe over the lookback window ending today, and builds the historical
// return table. Trading days missing from any asset are dropped.
func FetchReturns(apiKey string, assets montecarlo.AssetUniverse, lookbackDays int) (*montecarlo.ReturnTable, error) {
	if lookbackDays <= 0 {
		return nil, fmt.Errorf("lookback of %d days is not a valid window", lookbackDays)
	}
	to := date.Today()
	from := to.Add(-lookbackDays)

	prices := make([]montecarlo.PriceSeries, assets.N())
	for i, ticker := range assets {
		series, err := fetchCloses(apiKey, ticker, from, to)
		if err != nil {
			return nil, err
		}
		prices[i] = series
	}
	return montecarlo.TableFromPrices(assets, prices)
}

// fetchCloses fills the daily adjusted close prices for a given EODHD ticker.
// The EODHD ticker format is typically "SYMBOL.EXCHANGECODE".
func fetchCloses(apiKey, ticker string, from, to date.Date) (montecarlo.PriceSeries, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	addr := fmt.Sprintf("%s/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", baseURL, ticker, apiKey, from, to)

	type Info struct {
		Date          date.Date       `json:"date"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}

	// that's the payload
	content := make([]Info, 0)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch prices for %q: %w", ticker, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("no prices returned for %q between %s and %s", ticker, from, to)
	}

	series := make(montecarlo.PriceSeries, len(content))
	for _, info := range content {
		series[info.Date] = info.AdjustedClose.InexactFloat64()
	}
	return series, nil
}
