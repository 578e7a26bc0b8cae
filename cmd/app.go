// Package cmd implements the CLI application to question the fund tables.
package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/funddesk/fundchat"
	"github.com/funddesk/fundchat/agent"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fundsCmd{}, "data")
	c.Register(&overviewCmd{}, "data")
	c.Register(&performanceCmd{}, "data")
	c.Register(&summaryCmd{}, "data")
	c.Register(&topCmd{}, "data")
	c.Register(&custodiansCmd{}, "data")
	c.Register(&typesCmd{}, "data")
	c.Register(&searchCmd{}, "data")

	c.Register(&contextCmd{}, "assistant")
	c.Register(&askCmd{}, "assistant")

	c.Register(&serveCmd{}, "server")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var holdingsFile = flag.String("holdings", "holdings.csv", "Path to the holdings CSV file")
var tradesFile = flag.String("trades", "trades.csv", "Path to the trades CSV file")

// EnvAPIKey names the environment variable carrying the completion-backend
// credential. Leaving it unset is valid and means the backend is unavailable.
const EnvAPIKey = "GEMINI_API_KEY"

// openStore is the central function to load the two tables.
func openStore() (*fundchat.Store, error) {
	return fundchat.Load(*holdingsFile, *tradesFile)
}

// openAssistant loads the tables and wires the assistant with whatever
// credential the environment carries.
func openAssistant(ctx context.Context) (*fundchat.Store, *agent.Assistant, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	assistant, err := agent.New(ctx, store, os.Getenv(EnvAPIKey))
	if err != nil {
		return nil, nil, err
	}
	return store, assistant, nil
}
