package eodhd

import (
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// Quote returns the latest close for a ticker from the delayed real-time
// endpoint.
func Quote(apiKey, ticker string) (float64, error) {
	// https://eodhd.com/api/real-time/AAPL.US?api_token=demo&fmt=json
	// {
	//	"code": "AAPL.US",
	//	"timestamp": 1756472400,
	//	"open": 232.56,
	//	"close": 232.14,
	//	...
	// }
	addr := fmt.Sprintf("%s/real-time/%s?fmt=json&api_token=%s", baseURL, ticker, apiKey)

	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving quote for %q: %w", ticker, err)
	}

	path := "$.close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing quote for %q: %q %w", ticker, path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing quote for %q: %q not a float %v", ticker, path, jval)
	}
	if val == 0 {
		return math.NaN(), fmt.Errorf("empty quote for %q", ticker)
	}
	return val, nil
}
