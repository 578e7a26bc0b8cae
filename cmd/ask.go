package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// askCmd holds the flags for the 'ask' subcommand.
type askCmd struct{}

func (*askCmd) Name() string     { return "ask" }
func (*askCmd) Synopsis() string { return "ask the assistant about the fund data" }
func (*askCmd) Usage() string {
	return `fundq ask [question]

  Asks the assistant a question about the holdings and trades tables. With
  no argument, starts an interactive session; type 'bye' to exit.
  Requires the ` + EnvAPIKey + ` environment variable.
`
}

func (*askCmd) SetFlags(_ *flag.FlagSet) {}

func (c *askCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, assistant, err := openAssistant(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	render := func(s string) string {
		out, err := glamour.Render(s, "auto")
		if err != nil {
			return s
		}
		return out
	}

	if f.NArg() > 0 {
		answer, err := assistant.Answer(ctx, strings.Join(f.Args(), " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Print(render(answer))
		return subcommands.ExitSuccess
	}

	if err := assistant.Run(ctx, os.Stdout, os.Stdin, render); err != nil {
		fmt.Fprintf(os.Stderr, "Assistant failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
