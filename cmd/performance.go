package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/funddesk/fundchat/renderer"
	"github.com/google/subcommands"
)

type performanceCmd struct{}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display the per-fund performance ranking" }
func (*performanceCmd) Usage() string {
	return `fundq performance

  Displays summed PL YTD, market value and quantity per fund, sorted by
  PL YTD, highest first.
`
}

func (*performanceCmd) SetFlags(_ *flag.FlagSet) {}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PerformanceMarkdown(store.Performance()))
	return subcommands.ExitSuccess
}
