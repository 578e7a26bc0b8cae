package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/funddesk/fundchat/renderer"
	"github.com/google/subcommands"
)

type custodiansCmd struct{}

func (*custodiansCmd) Name() string     { return "custodians" }
func (*custodiansCmd) Synopsis() string { return "display per-custodian totals" }
func (*custodiansCmd) Usage() string {
	return `fundq custodians

  Displays summed market value, PL YTD and distinct fund count per custodian.
`
}

func (*custodiansCmd) SetFlags(_ *flag.FlagSet) {}

func (c *custodiansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CustodiansMarkdown(store.CustodianSummary()))
	return subcommands.ExitSuccess
}
