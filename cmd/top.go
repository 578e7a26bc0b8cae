package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/funddesk/fundchat/renderer"
	"github.com/google/subcommands"
)

// topCmd holds the flags for the 'top' subcommand.
type topCmd struct {
	fund string
	n    int
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "display the largest holdings by market value" }
func (*topCmd) Usage() string {
	return `fundq top [-f <fund>] [-n <count>]

  Displays the top holdings by market value, across all funds or for a
  single fund.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund to rank. Ranks across all funds by default.")
	f.IntVar(&c.n, "n", 10, "Number of holdings to display.")
}

func (c *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.n <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be positive\n")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	title := fmt.Sprintf("Top %d securities by market value", c.n)
	if c.fund != "" {
		title += " for " + c.fund
	}
	printMarkdown(renderer.TopSecuritiesMarkdown(title, store.TopSecurities(c.fund, c.n)))
	return subcommands.ExitSuccess
}
