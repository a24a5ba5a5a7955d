package eodhd

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/montecarlo"
)

// serve installs a test server answering the eod endpoint with canned
// payloads per ticker, and points the package at it.
func serve(t *testing.T, payloads map[string]string) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/eod/") {
			http.NotFound(w, r)
			return
		}
		ticker := strings.TrimPrefix(r.URL.Path, "/eod/")
		payload, ok := payloads[ticker]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(server.Close)

	old := baseURL
	baseURL = server.URL
	t.Cleanup(func() { baseURL = old })
}

func TestFetchReturns(t *testing.T) {
	// BBB misses 2025-06-03: that day must be dropped for both assets, and
	// the AAA return over the gap spans 100 -> 110.
	serve(t, map[string]string{
		"AAA": `[
			{"date":"2025-06-02","adjusted_close":100},
			{"date":"2025-06-03","adjusted_close":104},
			{"date":"2025-06-04","adjusted_close":110},
			{"date":"2025-06-05","adjusted_close":99}]`,
		"BBB": `[
			{"date":"2025-06-02","adjusted_close":50},
			{"date":"2025-06-04","adjusted_close":51},
			{"date":"2025-06-05","adjusted_close":51.51}]`,
	})

	assets, err := montecarlo.NewAssetUniverse("AAA", "BBB")
	if err != nil {
		t.Fatal(err)
	}
	table, err := FetchReturns("demo", assets, 252)
	if err != nil {
		t.Fatalf("FetchReturns() failed: %v", err)
	}

	if got := table.Observations(); got != 2 {
		t.Fatalf("Observations() = %d, want 2", got)
	}
	want := [][]float64{
		{0.10, 0.02},   // 2025-06-04 vs 2025-06-02
		{-0.10, 0.01}, // 2025-06-05 vs 2025-06-04
	}
	for i, row := range want {
		for j, w := range row {
			if got := table.At(i, j); math.Abs(got-w) > 1e-9 {
				t.Errorf("At(%d,%d) = %g, want %g", i, j, got, w)
			}
		}
	}
}

func TestFetchReturns_missingTicker(t *testing.T) {
	serve(t, map[string]string{
		"AAA": `[{"date":"2025-06-02","adjusted_close":100},{"date":"2025-06-03","adjusted_close":101}]`,
	})

	assets, err := montecarlo.NewAssetUniverse("AAA", "ZZZ")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := FetchReturns("demo", assets, 252); err == nil {
		t.Fatal("FetchReturns() with an unknown ticker should fail")
	}
}

func TestFetchReturns_invalidLookback(t *testing.T) {
	if _, err := FetchReturns("demo", montecarlo.AssetUniverse{"AAA"}, 0); err == nil {
		t.Fatal("FetchReturns() with a zero lookback should fail")
	}
}
