package montecarlo

// WeightsProvider yields the portfolio weights vector for an asset universe.
// Weights must sum to 1. The simulation loop only depends on this interface,
// so alternative weighting policies can be substituted without touching it.
type WeightsProvider interface {
	Weights(assets AssetUniverse) []float64
}

// EqualWeights assigns 1/N to every asset.
type EqualWeights struct{}

func (EqualWeights) Weights(assets AssetUniverse) []float64 {
	w := make([]float64, assets.N())
	for i := range w {
		w[i] = 1 / float64(assets.N())
	}
	return w
}
