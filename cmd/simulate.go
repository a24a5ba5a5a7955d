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

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	simulations int
	days        int
	amount      float64
	currency    string
	lookback    int
	seed        uint64
	workers     int
	returns     string
	chart       string
	apiKey      string
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "simulate the distribution of future portfolio value"
}
func (*simulateCmd) Usage() string {
	return `mcs simulate [options] <ticker> [<ticker>...]

  Fetches historical returns for the given assets (or loads them with
  -returns), runs the Monte Carlo simulation, and displays the performance
  report.

Usage Examples:
# One year projection of an equally weighted 4-asset portfolio.
$ mcs simulate -amount 100000 -days 252 -s 1000 AAPL.US MSFT.US NVDA.US SAP.XETRA

# Reproducible offline run with a chart.
$ mcs simulate -returns returns.csv -seed 42 -chart wealth.png

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.simulations, "s", 1000, "Number of simulated scenarios.")
	f.IntVar(&c.days, "days", 252, "Number of trading days to project.")
	f.Float64Var(&c.amount, "amount", 100000, "Starting amount invested in the portfolio.")
	f.StringVar(&c.currency, "currency", "USD", "Reporting currency for the amounts.")
	f.IntVar(&c.lookback, "lookback", 252, "Lookback window in calendar days for historical returns.")
	f.Uint64Var(&c.seed, "seed", 0, "Random seed for reproducible runs. 0 draws a fresh one.")
	f.IntVar(&c.workers, "workers", 0, "Number of scenario workers. 0 uses all CPUs.")
	f.StringVar(&c.returns, "returns", "", "Load historical returns from this CSV file instead of fetching.")
	f.StringVar(&c.chart, "chart", "", "Write a PNG chart of the simulated wealth paths to this file.")
	f.StringVar(&c.apiKey, "eodhd-api-key", "", "EODHD API key. Takes precedence over the "+eodhdAPIKeyEnv+" environment variable.")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	result, summary, err := runPipeline(cfg, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		return subcommands.ExitFailure
	}

	report := montecarlo.NewReport(cfg, c.currency, summary)
	printMarkdown(renderer.SimulationMarkdown(report))

	if c.chart != "" {
		png, err := renderer.WealthChart(result, "Monte Carlo Simulation of Portfolio Returns")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.chart, png, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing chart file %q: %v\n", c.chart, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wealth chart written to %s\n", c.chart)
	}

	return subcommands.ExitSuccess
}
