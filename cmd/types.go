package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/funddesk/fundchat/renderer"
	"github.com/google/subcommands"
)

type typesCmd struct{}

func (*typesCmd) Name() string     { return "types" }
func (*typesCmd) Synopsis() string { return "display per-security-type totals" }
func (*typesCmd) Usage() string {
	return `fundq types

  Displays summed market value, PL YTD and distinct security count per
  security type. Empty when the holdings table has no security-type column.
`
}

func (*typesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *typesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SecurityTypesMarkdown(store.SecurityTypeSummary()))
	return subcommands.ExitSuccess
}
