package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avlt/freelance"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addProjectCmd struct {
	name     string
	client   int
	status   string
	deadline string
	fee      string
}

func (*addProjectCmd) Name() string     { return "add-project" }
func (*addProjectCmd) Synopsis() string { return "create a new project record" }
func (*addProjectCmd) Usage() string {
	return `lance add-project -name <name> -client <id> -status <status> -deadline <date> -fee <amount>

  Creates a project and prints its id. New projects show first in listings.
`
}

func (c *addProjectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Project name.")
	f.IntVar(&c.client, "client", 0, "Id of the client the project belongs to.")
	f.StringVar(&c.status, "status", "", "One of 'Planning', 'In Progress', 'Completed'.")
	f.StringVar(&c.deadline, "deadline", "", "Deadline date as YYYY-MM-DD.")
	f.StringVar(&c.fee, "fee", "", "Agreed fee as a plain decimal number.")
}

func (c *addProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.client == 0 || c.status == "" || c.deadline == "" || c.fee == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -client, -status, -deadline and -fee are all required.")
		return subcommands.ExitUsageError
	}
	status, err := freelance.ParseStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	deadline, err := freelance.ParseDate(c.deadline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -deadline %q: %v\n", c.deadline, err)
		return subcommands.ExitUsageError
	}
	fee, err := decimal.NewFromString(c.fee)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -fee %q: %v\n", c.fee, err)
		return subcommands.ExitUsageError
	}

	session, _, cleanup, err := resumeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	var created freelance.Project
	err = session.Mutate(func(b *freelance.Book) error {
		created = b.AddProject(freelance.Project{
			Name:     c.name,
			ClientID: c.client,
			Status:   status,
			Deadline: deadline,
			Fee:      fee,
		})
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created project %d.\n", created.ID)
	return subcommands.ExitSuccess
}
