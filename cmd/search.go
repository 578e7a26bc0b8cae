package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/funddesk/fundchat/renderer"
	"github.com/google/subcommands"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	trades bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search rows by fund, security or ticker name" }
func (*searchCmd) Usage() string {
	return `fundq search [-t] <query>

  Searches holdings rows whose fund, security or security type name contains
  the query, case-insensitively. With -t, searches trades rows by fund,
  instrument or ticker instead.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.trades, "t", false, "Search the trades table instead of holdings.")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing search query\n")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	title := fmt.Sprintf("Results for %q", query)
	if c.trades {
		printMarkdown(renderer.TradesMarkdown(title, store.SearchTrades(query)))
	} else {
		printMarkdown(renderer.HoldingsMarkdown(title, store.SearchHoldings(query)))
	}
	return subcommands.ExitSuccess
}
