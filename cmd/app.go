// Package cmd implements the CLI application to run Monte Carlo portfolio
// simulations.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/eodhd"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the mcs application.
// A main package will iterate Commands to register them, and Execute() the
// user-selected one.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&fetchCmd{},
	&chartCmd{},
	&quoteCmd{},
	&topicCmd{},
	&assistCmd{},
}

const eodhdAPIKeyEnv = "EODHD_API_KEY"

// eodhdAPIKey retrieves the EODHD API key from the command-line flag or the
// environment variable. It prioritizes the flag over the environment.
func eodhdAPIKey(flagValue string) string {
	if flagValue == "" {
		flagValue = os.Getenv(eodhdAPIKeyEnv)
	}
	return flagValue
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown, still readable
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// loadTable returns the historical return table: from a CSV export when
// 'returns' names a file, otherwise fetched from eodhd.com for the tickers.
func loadTable(returns string, tickers []string, apiKeyFlag string, lookback int) (*montecarlo.ReturnTable, error) {
	if returns != "" {
		f, err := os.Open(returns)
		if err != nil {
			return nil, fmt.Errorf("cannot open returns file: %w", err)
		}
		defer f.Close()
		return montecarlo.ReadCSV(f)
	}

	assets, err := montecarlo.NewAssetUniverse(tickers...)
	if err != nil {
		return nil, err
	}
	key := eodhdAPIKey(apiKeyFlag)
	if key == "" {
		return nil, fmt.Errorf("EODHD API key is not set: use the -eodhd-api-key flag or the %s environment variable", eodhdAPIKeyEnv)
	}
	return eodhd.FetchReturns(key, assets, lookback)
}

// runPipeline runs the full estimate, factorize, simulate pipeline on a
// return table.
func runPipeline(cfg montecarlo.Config, table *montecarlo.ReturnTable) (*montecarlo.Result, *montecarlo.Summary, error) {
	stats, err := montecarlo.Estimate(table)
	if err != nil {
		return nil, nil, err
	}
	transform, err := montecarlo.Factorize(stats.Cov)
	if err != nil {
		return nil, nil, err
	}
	engine, err := montecarlo.NewEngine(cfg, stats, transform, montecarlo.EqualWeights{})
	if err != nil {
		return nil, nil, err
	}
	result := engine.Run()
	summary, err := montecarlo.Summarize(result.Terminal, cfg.StartingAmount)
	if err != nil {
		return nil, nil, err
	}
	return result, summary, nil
}
