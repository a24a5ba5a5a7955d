package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/eodhd"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	lookback   int
	outputFile string
	apiKey     string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch the historical return table from eodhd.com" }
func (*fetchCmd) Usage() string {
	return `mcs fetch [-lookback <days>] [-o <file>] <ticker> [<ticker>...]

  Fetches the historical daily returns of the given assets and writes them
  as CSV, so a later 'mcs simulate -returns <file>' can run offline.

  Requires the ` + eodhdAPIKeyEnv + ` environment variable to be set or passed as a flag.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.lookback, "lookback", 252, "Lookback window in calendar days for historical returns.")
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to stdout.")
	f.StringVar(&c.apiKey, "eodhd-api-key", "", "EODHD API key. Takes precedence over the "+eodhdAPIKeyEnv+" environment variable.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets, err := montecarlo.NewAssetUniverse(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	key := eodhdAPIKey(c.apiKey)
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable\n", eodhdAPIKeyEnv)
		return subcommands.ExitFailure
	}

	table, err := eodhd.FetchReturns(key, assets, c.lookback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch from eodhd.com: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening output file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := montecarlo.WriteCSV(out, table); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing returns: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.outputFile != "" {
		fmt.Printf("Wrote %d observations for %d assets to %s\n", table.Observations(), assets.N(), c.outputFile)
	}
	return subcommands.ExitSuccess
}
