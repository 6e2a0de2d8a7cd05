package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/avlt/freelance"
	"github.com/google/subcommands"
)

type importClientsCmd struct {
	spec freelance.ClientImportSpec
}

func (*importClientsCmd) Name() string     { return "import-clients" }
func (*importClientsCmd) Synopsis() string { return "import clients from a JSON document" }
func (*importClientsCmd) Usage() string {
	return `lance import-clients [-records <path>] [-name <path>] [-email <path>] [-phone <path>] [-lead <path>] [file]

  Reads a JSON document (stdin without a file argument) and creates one
  client per record. The flags are jsonpath selectors: -records picks
  the array of records, the others pick fields within each record. The
  defaults fit a plain array of objects with 'name', 'email', 'phone'
  and 'lead' fields. Unknown lead source values import as 'Other'.
`
}

func (c *importClientsCmd) SetFlags(f *flag.FlagSet) {
	def := freelance.DefaultClientImportSpec()
	f.StringVar(&c.spec.Records, "records", def.Records, "Selector for the array of client records.")
	f.StringVar(&c.spec.Name, "name", def.Name, "Selector for the client name within a record.")
	f.StringVar(&c.spec.Email, "email", def.Email, "Selector for the client email within a record.")
	f.StringVar(&c.spec.Phone, "phone", def.Phone, "Selector for the client phone within a record.")
	f.StringVar(&c.spec.Lead, "lead", def.Lead, "Selector for the lead source within a record.")
}

func (c *importClientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader = os.Stdin
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	records, err := freelance.ImportClients(in, c.spec)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	session, _, cleanup, err := resumeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	err = session.Mutate(func(b *freelance.Book) error {
		for _, record := range records {
			b.AddClient(record)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d clients.\n", len(records))
	return subcommands.ExitSuccess
}
