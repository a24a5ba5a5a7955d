package montecarlo

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Config holds the constructor-level parameters of a simulation run.
type Config struct {
	Assets         AssetUniverse
	Simulations    int     // number of scenarios S
	ProjectedDays  int     // projection horizon D in trading days
	StartingAmount float64 // invested amount A
	Seed           uint64  // seed for the random source; 0 draws a fresh one
	Workers        int     // scenario workers; 0 defaults to GOMAXPROCS
}

// Validate checks the configuration surface. Callers are expected to
// validate before invoking the engine; the engine re-validates at its
// boundary regardless.
func (c Config) Validate() error {
	if _, err := NewAssetUniverse(c.Assets...); err != nil {
		return err
	}
	if c.Simulations <= 0 {
		return &InvalidConfigurationError{Field: "simulations", Reason: "must be positive"}
	}
	if c.ProjectedDays <= 0 {
		return &InvalidConfigurationError{Field: "projected days", Reason: "must be positive"}
	}
	if c.StartingAmount <= 0 {
		return &InvalidConfigurationError{Field: "starting amount", Reason: "must be positive"}
	}
	if c.Workers < 0 {
		return &InvalidConfigurationError{Field: "workers", Reason: "must not be negative"}
	}
	return nil
}

// Result is the outcome of a simulation run: the full wealth matrix (one
// column per scenario, one row per projected day) and the terminal wealth
// of every scenario. Owned exclusively by the run that produced it.
type Result struct {
	Wealth   *mat.Dense // D x S
	Terminal []float64  // length S, Wealth's last row
}

// Engine produces a Result from historical statistics, the correlation
// transform, and portfolio weights. All derived inputs are read-only across
// scenarios; scenarios are statistically i.i.d. given fixed inputs.
type Engine struct {
	cfg       Config
	stats     *Statistics
	transform *CorrelationTransform
	weights   WeightsProvider
}

// NewEngine validates the configuration and the dimensional consistency of
// its inputs. A nil weights provider defaults to equal weighting.
func NewEngine(cfg Config, stats *Statistics, transform *CorrelationTransform, weights WeightsProvider) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Assets.N()
	if len(stats.Mean) != n {
		return nil, fmt.Errorf("mean return vector has %d entries for %d assets", len(stats.Mean), n)
	}
	if transform.Dim() != n {
		return nil, fmt.Errorf("correlation transform is %dx%d for %d assets", transform.Dim(), transform.Dim(), n)
	}
	if weights == nil {
		weights = EqualWeights{}
	}
	return &Engine{cfg: cfg, stats: stats, transform: transform, weights: weights}, nil
}

// Run simulates all scenarios and returns the wealth matrix.
//
// Scenarios are independent and run on a bounded worker pool. Each scenario
// owns a random stream keyed by (seed, scenario index), so runs with the
// same seed are reproducible regardless of worker count, and no random
// state is shared between workers. Each scenario writes a disjoint column
// of the wealth matrix; Run returns only once all columns are written.
func (e *Engine) Run() *Result {
	d, s, n := e.cfg.ProjectedDays, e.cfg.Simulations, e.cfg.Assets.N()

	// The drift matrix replicates the mean return vector on every projected
	// day. It is invariant across scenarios, so it is built once.
	drift := mat.NewDense(d, n, nil)
	for i := 0; i < d; i++ {
		drift.SetRow(i, e.stats.Mean)
	}

	w := mat.NewVecDense(n, e.weights.Weights(e.cfg.Assets))
	lt := e.transform.L().T()

	seed := e.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	workers := e.cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > s {
		workers = s
	}

	result := &Result{
		Wealth:   mat.NewDense(d, s, nil),
		Terminal: make([]float64, s),
	}

	scenarios := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			noise := mat.NewDense(d, n, nil)
			synthetic := mat.NewDense(d, n, nil)
			daily := mat.NewVecDense(d, nil)
			trajectory := make([]float64, d)
			for sc := range scenarios {
				e.scenario(sc, seed, drift, lt, w, noise, synthetic, daily, trajectory)
				result.Wealth.SetCol(sc, trajectory)
				result.Terminal[sc] = trajectory[d-1]
			}
		}()
	}
	for sc := 0; sc < s; sc++ {
		scenarios <- sc
	}
	close(scenarios)
	wg.Wait()

	return result
}

// scenario fills trajectory with one simulated wealth path.
func (e *Engine) scenario(sc int, seed uint64, drift mat.Matrix, lt mat.Matrix, w *mat.VecDense, noise, synthetic *mat.Dense, daily *mat.VecDense, trajectory []float64) {
	d, n := noise.Dims()

	// Independent standard normal variates, the only source of randomness.
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, uint64(sc))}
	for i := 0; i < d; i++ {
		for j := 0; j < n; j++ {
			noise.Set(i, j, normal.Rand())
		}
	}

	// Correlated, asset-scaled synthetic daily returns: drift + noise·Lᵗ.
	synthetic.Mul(noise, lt)
	synthetic.Add(drift, synthetic)

	// One portfolio return per day, then compound into wealth. Compounding
	// is a running product over 1+return, not a running sum.
	daily.MulVec(synthetic, w)
	amount := e.cfg.StartingAmount
	for t := 0; t < d; t++ {
		amount *= 1 + daily.AtVec(t)
		trajectory[t] = amount
	}
}
