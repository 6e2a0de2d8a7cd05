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

type editProjectCmd struct {
	id       int
	name     string
	client   int
	status   string
	deadline string
	fee      string
}

func (*editProjectCmd) Name() string     { return "edit-project" }
func (*editProjectCmd) Synopsis() string { return "edit an existing project record" }
func (*editProjectCmd) Usage() string {
	return `lance edit-project -id <id> [-name <name>] [-client <id>] [-status <status>] [-deadline <date>] [-fee <amount>]

  Replaces the given fields of the project; fields not passed are kept.
`
}

func (c *editProjectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the project to edit.")
	f.StringVar(&c.name, "name", "", "New project name.")
	f.IntVar(&c.client, "client", 0, "New client id.")
	f.StringVar(&c.status, "status", "", "New status.")
	f.StringVar(&c.deadline, "deadline", "", "New deadline date as YYYY-MM-DD.")
	f.StringVar(&c.fee, "fee", "", "New fee as a plain decimal number.")
}

func (c *editProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	record, ok := session.Book().Project(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no project with id %d.\n", c.id)
		return subcommands.ExitFailure
	}

	var parseErr error
	f.Visit(func(fl *flag.Flag) {
		var err error
		switch fl.Name {
		case "name":
			record.Name = c.name
		case "client":
			record.ClientID = c.client
		case "status":
			record.Status, err = freelance.ParseStatus(c.status)
		case "deadline":
			record.Deadline, err = freelance.ParseDate(c.deadline)
		case "fee":
			record.Fee, err = decimal.NewFromString(c.fee)
		}
		if parseErr == nil {
			parseErr = err
		}
	})
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr)
		return subcommands.ExitUsageError
	}

	err = session.Mutate(func(b *freelance.Book) error {
		b.UpdateProject(record)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated project %d.\n", c.id)
	return subcommands.ExitSuccess
}
