package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	simulations int
	days        int
	amount      float64
	lookback    int
	seed        uint64
	workers     int
	returns     string
	outputFile  string
	apiKey      string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render simulated wealth paths as a PNG chart" }
func (*chartCmd) Usage() string {
	return `mcs chart -o <file> [options] <ticker> [<ticker>...]

  Runs a simulation and renders the wealth trajectories of its scenarios as
  a PNG line chart, one line per scenario.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.simulations, "s", 1000, "Number of simulated scenarios.")
	f.IntVar(&c.days, "days", 252, "Number of trading days to project.")
	f.Float64Var(&c.amount, "amount", 100000, "Starting amount invested in the portfolio.")
	f.IntVar(&c.lookback, "lookback", 252, "Lookback window in calendar days for historical returns.")
	f.Uint64Var(&c.seed, "seed", 0, "Random seed for reproducible runs. 0 draws a fresh one.")
	f.IntVar(&c.workers, "workers", 0, "Number of scenario workers. 0 uses all CPUs.")
	f.StringVar(&c.returns, "returns", "", "Load historical returns from this CSV file instead of fetching.")
	f.StringVar(&c.outputFile, "o", "wealth.png", "Output PNG file.")
	f.StringVar(&c.apiKey, "eodhd-api-key", "", "EODHD API key. Takes precedence over the "+eodhdAPIKeyEnv+" environment variable.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := loadTable(c.returns, f.Args(), c.apiKey, c.lookback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading historical returns: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := montecarlo.Config{
		Assets:         table.Assets(),
		Simulations:    c.simulations,
		ProjectedDays:  c.days,
		StartingAmount: c.amount,
		Seed:           c.seed,
		Workers:        c.workers,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	result, _, err := runPipeline(cfg, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		return subcommands.ExitFailure
	}

	title := fmt.Sprintf("Monte Carlo Simulation (%s)", cfg.Assets)
	png, err := renderer.WealthChart(result, title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.outputFile, png, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wealth chart written to %s\n", c.outputFile)
	return subcommands.ExitSuccess
}
