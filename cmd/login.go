package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/avlt/freelance"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

type loginCmd struct {
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in, registering the username on first use" }
func (*loginCmd) Usage() string {
	return `lance login [-p <password>] <username>

  Logs in as <username>. An unknown username is registered with the given
  password; a known username must match its password. The session persists
  until 'lance logout'.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.password, "p", "", "Password (prompted without echo when omitted).")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one username argument.")
		return subcommands.ExitUsageError
	}
	username := f.Arg(0)

	password := c.password
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			return subcommands.ExitFailure
		}
		password = string(raw)
	}

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
	created, err := session.Login(username, password)
	if errors.Is(err, freelance.ErrIncorrectPassword) {
		fmt.Fprintf(os.Stderr, "Incorrect password for %q.\n", username)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if created {
		fmt.Printf("Registered new user %q and logged in.\n", username)
	} else {
		fmt.Printf("Logged in as %q.\n", username)
	}
	return subcommands.ExitSuccess
}
