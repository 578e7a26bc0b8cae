package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/funddesk/fundchat/renderer"
	"github.com/google/subcommands"
)

type overviewCmd struct{}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display totals and performance across all funds" }
func (*overviewCmd) Usage() string {
	return `fundq overview

  Displays total counts, per-fund counts and the performance ranking with
  its top and worst performer.
`
}

func (*overviewCmd) SetFlags(_ *flag.FlagSet) {}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.OverviewMarkdown(store.Overview()))
	return subcommands.ExitSuccess
}
