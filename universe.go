package montecarlo

import "strings"

// AssetUniverse is an ordered sequence of asset tickers. The order is
// significant and fixed for the lifetime of a simulation run: it indexes
// every vector and matrix derived from it.
type AssetUniverse []string

// NewAssetUniverse validates and returns the ordered asset list.
func NewAssetUniverse(tickers ...string) (AssetUniverse, error) {
	if len(tickers) == 0 {
		return nil, &InvalidConfigurationError{Field: "assets", Reason: "must not be empty"}
	}
	seen := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		if strings.TrimSpace(t) == "" {
			return nil, &InvalidConfigurationError{Field: "assets", Reason: "must not contain blank tickers"}
		}
		if seen[t] {
			return nil, &InvalidConfigurationError{Field: "assets", Reason: "must not contain duplicate ticker " + t}
		}
		seen[t] = true
	}
	return AssetUniverse(tickers), nil
}

// N returns the number of assets in the universe.
func (u AssetUniverse) N() int { return len(u) }

func (u AssetUniverse) String() string { return strings.Join(u, ", ") }
