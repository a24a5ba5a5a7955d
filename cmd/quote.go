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

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct {
	apiKey string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "print the latest close for each asset" }
func (*quoteCmd) Usage() string {
	return `mcs quote <ticker> [<ticker>...]

  Prints the latest close for each asset from the delayed real-time feed.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.apiKey, "eodhd-api-key", "", "EODHD API key. Takes precedence over the "+eodhdAPIKeyEnv+" environment variable.")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	status := subcommands.ExitSuccess
	for _, ticker := range assets {
		price, err := eodhd.Quote(key, ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s: %.2f\n", ticker, price)
	}
	return status
}
