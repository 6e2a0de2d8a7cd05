package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/avlt/freelance/renderer"
	"github.com/google/subcommands"
)

type listClientsCmd struct{}

func (*listClientsCmd) Name() string     { return "clients" }
func (*listClientsCmd) Synopsis() string { return "list all clients" }
func (*listClientsCmd) Usage() string {
	return `lance clients

  Lists all client records, newest first.
`
}

func (*listClientsCmd) SetFlags(f *flag.FlagSet) {}

func (*listClientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, _, cleanup, err := resumeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	printMarkdown(renderer.Clients(slices.Collect(session.Book().Clients())))
	return subcommands.ExitSuccess
}
