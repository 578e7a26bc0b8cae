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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	fund string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a per-fund snapshot" }
func (*summaryCmd) Usage() string {
	return `fundq summary [-f <fund>]

  Displays holdings and trades counts, totals, distinct securities,
  custodians and the latest as-of date for one fund, or for every fund
  when -f is omitted.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund to summarize. Summarizes all funds by default.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	funds := store.Funds()
	if c.fund != "" {
		funds = []string{c.fund}
	}

	var b strings.Builder
	for _, fund := range funds {
		b.WriteString(renderer.SummaryMarkdown(store.Summary(fund)))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
