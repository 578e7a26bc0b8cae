package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/funddesk/fundchat/server"
	"github.com/google/subcommands"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the JSON inspection API" }
func (*serveCmd) Usage() string {
	return `fundq serve [-addr <host:port>]

  Serves the fund tables and the assistant over a JSON API:
  fund list, summaries, performance, rankings and POST /api/ask.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "Address to listen on.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, assistant, err := openAssistant(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	log.Printf("serving on %s", c.addr)
	if !assistant.Configured() {
		log.Printf("%s not set, /api/ask will report the backend as unavailable", EnvAPIKey)
	}
	if err := http.ListenAndServe(c.addr, server.NewRouter(store, assistant)); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
