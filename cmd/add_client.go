package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avlt/freelance"
	"github.com/google/subcommands"
)

type addClientCmd struct {
	name  string
	email string
	phone string
	lead  string
}

func (*addClientCmd) Name() string     { return "add-client" }
func (*addClientCmd) Synopsis() string { return "create a new client record" }
func (*addClientCmd) Usage() string {
	return `lance add-client -name <name> -email <email> -phone <phone> -lead <source>

  Creates a client. All fields are required. The lead source is one of
  LinkedIn, Website, Direct Email, Referral, Other.
`
}

func (c *addClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Client name.")
	f.StringVar(&c.email, "email", "", "Client email.")
	f.StringVar(&c.phone, "phone", "", "Client phone number.")
	f.StringVar(&c.lead, "lead", "", "Lead source.")
}

func (c *addClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.email == "" || c.phone == "" || c.lead == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -email, -phone and -lead are all required.")
		return subcommands.ExitUsageError
	}
	lead, err := freelance.ParseLeadSource(c.lead)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	session, _, cleanup, err := resumeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	var created freelance.Client
	err = session.Mutate(func(b *freelance.Book) error {
		created = b.AddClient(freelance.Client{Name: c.name, Email: c.email, Phone: c.phone, Lead: lead})
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created client %d (%s).\n", created.ID, created.Name)
	return subcommands.ExitSuccess
}
