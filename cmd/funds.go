package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fundsCmd struct{}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list all fund names seen in either table" }
func (*fundsCmd) Usage() string {
	return `fundq funds

  Lists the sorted union of fund names from the holdings and trades tables.
`
}

func (*fundsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, fund := range store.Funds() {
		fmt.Println(fund)
	}
	return subcommands.ExitSuccess
}
