package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avlt/freelance"
	"github.com/google/subcommands"
)

type doneCmd struct {
	id int
}

func (*doneCmd) Name() string     { return "done" }
func (*doneCmd) Synopsis() string { return "toggle a project between completed and in progress" }
func (*doneCmd) Usage() string {
	return `lance done -id <id>

  Marks the project 'Completed', or back to 'In Progress' if it already
  was completed.
`
}

func (c *doneCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the project to toggle.")
}

func (c *doneCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var toggled freelance.Project
	err = session.Mutate(func(b *freelance.Book) error {
		var ok bool
		toggled, ok = b.ToggleCompleted(c.id)
		if !ok {
			return fmt.Errorf("no project with id %d", c.id)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Project %d is now %s.\n", toggled.ID, toggled.Status)
	return subcommands.ExitSuccess
}
