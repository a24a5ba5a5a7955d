package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/agent"
	"github.com/etnz/montecarlo/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI risk analyst.
type assistCmd struct {
	simulations int
	days        int
	amount      float64
	currency    string
	lookback    int
	seed        uint64
	returns     string
	apiKey      string
	question    string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "discuss a simulation report with the AI risk analyst"
}
func (*assistCmd) Usage() string {
	return `mcs assist [options] [-q <question>] <ticker> [<ticker>...]

  Runs a simulation and starts an interactive session with an AI risk
  analyst that has the resulting report in context.

  Requires the GEMINI_API_KEY environment variable to be set.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.simulations, "s", 1000, "Number of simulated scenarios.")
	f.IntVar(&c.days, "days", 252, "Number of trading days to project.")
	f.Float64Var(&c.amount, "amount", 100000, "Starting amount invested in the portfolio.")
	f.StringVar(&c.currency, "currency", "USD", "Reporting currency for the amounts.")
	f.IntVar(&c.lookback, "lookback", 252, "Lookback window in calendar days for historical returns.")
	f.Uint64Var(&c.seed, "seed", 0, "Random seed for reproducible runs. 0 draws a fresh one.")
	f.StringVar(&c.returns, "returns", "", "Load historical returns from this CSV file instead of fetching.")
	f.StringVar(&c.apiKey, "eodhd-api-key", "", "EODHD API key. Takes precedence over the "+eodhdAPIKeyEnv+" environment variable.")
	f.StringVar(&c.question, "q", "", "Initial question for the analyst.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	_, summary, err := runPipeline(cfg, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		return subcommands.ExitFailure
	}
	report := renderer.SimulationMarkdown(montecarlo.NewReport(cfg, c.currency, summary))
	printMarkdown(report)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin)
	var prompts []string
	if c.question != "" {
		prompts = append(prompts, c.question)
	}
	if err := a.Run(ctx, client, report, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
