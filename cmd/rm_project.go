package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avlt/freelance"
	"github.com/google/subcommands"
)

type rmProjectCmd struct {
	id int
}

func (*rmProjectCmd) Name() string     { return "rm-project" }
func (*rmProjectCmd) Synopsis() string { return "delete a project record" }
func (*rmProjectCmd) Usage() string {
	return `lance rm-project -id <id>
`
}

func (c *rmProjectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the project to delete.")
}

func (c *rmProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		b.RemoveProject(c.id)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted project %d.\n", c.id)
	return subcommands.ExitSuccess
}
