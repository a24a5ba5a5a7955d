package montecarlo

// Report gathers the reporting surface of a simulation run: the mandatory
// summary statistics plus the run parameters, with amounts carrying their
// reporting currency. It is the input of the renderer package.
type Report struct {
	Assets        AssetUniverse
	Simulations   int
	ProjectedDays int

	Invested    Money
	Median      Money // exceeded with 50% probability
	Percentile5 Money // exceeded with 95% probability
	Percentile1 Money // exceeded with 99% probability
	Profitable  Percent
}

// NewReport assembles the report for a run summary in the given currency.
func NewReport(cfg Config, currency string, s *Summary) *Report {
	return &Report{
		Assets:        cfg.Assets,
		Simulations:   s.Scenarios,
		ProjectedDays: cfg.ProjectedDays,
		Invested:      M(s.StartingAmount, currency),
		Median:        M(s.Median, currency),
		Percentile5:   M(s.Percentile5, currency),
		Percentile1:   M(s.Percentile1, currency),
		Profitable:    s.Profitable,
	}
}
