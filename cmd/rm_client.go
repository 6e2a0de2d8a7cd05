package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avlt/freelance"
	"github.com/google/subcommands"
)

type rmClientCmd struct {
	id int
}

func (*rmClientCmd) Name() string     { return "rm-client" }
func (*rmClientCmd) Synopsis() string { return "delete a client record" }
func (*rmClientCmd) Usage() string {
	return `lance rm-client -id <id>

  Deletes the client. Projects referencing it are kept and show an empty
  client name from then on.
`
}

func (c *rmClientCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the client to delete.")
}

func (c *rmClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	session, _, cleanup, err := resumeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	err = session.Mutate(func(b *freelance.Book) error {
		b.RemoveClient(c.id)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted client %d.\n", c.id)
	return subcommands.ExitSuccess
}
