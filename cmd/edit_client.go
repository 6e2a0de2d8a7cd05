package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avlt/freelance"
	"github.com/google/subcommands"
)

type editClientCmd struct {
	id    int
	name  string
	email string
	phone string
	lead  string
}

func (*editClientCmd) Name() string     { return "edit-client" }
func (*editClientCmd) Synopsis() string { return "edit an existing client record" }
func (*editClientCmd) Usage() string {
	return `lance edit-client -id <id> [-name <name>] [-email <email>] [-phone <phone>] [-lead <source>]

  Replaces the given fields of the client; fields not passed are kept.
`
}

func (c *editClientCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the client to edit.")
	f.StringVar(&c.name, "name", "", "New client name.")
	f.StringVar(&c.email, "email", "", "New client email.")
	f.StringVar(&c.phone, "phone", "", "New client phone number.")
	f.StringVar(&c.lead, "lead", "", "New lead source.")
}

func (c *editClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	record, ok := session.Book().Client(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no client with id %d.\n", c.id)
		return subcommands.ExitFailure
	}

	var parseErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			record.Name = c.name
		case "email":
			record.Email = c.email
		case "phone":
			record.Phone = c.phone
		case "lead":
			record.Lead, parseErr = freelance.ParseLeadSource(c.lead)
		}
	})
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr)
		return subcommands.ExitUsageError
	}

	err = session.Mutate(func(b *freelance.Book) error {
		b.UpdateClient(record)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated client %d.\n", c.id)
	return subcommands.ExitSuccess
}
