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

// contextCmd shows the context that would be sent to the completion backend
// for a given question, without calling it.
type contextCmd struct{}

func (*contextCmd) Name() string     { return "context" }
func (*contextCmd) Synopsis() string { return "show the composed context for a question" }
func (*contextCmd) Usage() string {
	return `fundq context <question>

  Classifies the question and prints the exact context block the assistant
  would send to the completion backend. Useful to inspect topic detection
  without a configured credential.
`
}

func (*contextCmd) SetFlags(_ *flag.FlagSet) {}

func (c *contextCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing question\n")
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Context(store, store.Classify(question)))
	return subcommands.ExitSuccess
}
