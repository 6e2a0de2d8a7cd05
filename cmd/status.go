package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avlt/freelance"
	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the current session" }
func (*statusCmd) Usage() string {
	return `lance status

  Shows who is logged in and the size of their book.
`
}

func (*statusCmd) SetFlags(f *flag.FlagSet) {}

func (*statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	session := freelance.NewSession(store)
	ok, err := session.Resume()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Println("Not logged in.")
		return subcommands.ExitSuccess
	}

	clients, projects := 0, 0
	for range session.Book().Clients() {
		clients++
	}
	for range session.Book().Projects(freelance.ProjectFilter{}) {
		projects++
	}
	fmt.Printf("Logged in as %q: %d clients, %d projects.\n", session.User(), clients, projects)
	return subcommands.ExitSuccess
}
