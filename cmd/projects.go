package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/avlt/freelance"
	"github.com/avlt/freelance/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type listProjectsCmd struct {
	status string
	client int
	minFee string
	maxFee string
}

func (*listProjectsCmd) Name() string     { return "projects" }
func (*listProjectsCmd) Synopsis() string { return "list projects, optionally filtered" }
func (*listProjectsCmd) Usage() string {
	return `lance projects [-status <status>] [-client <id>] [-min-fee <amount>] [-max-fee <amount>]

  Lists project records, newest first. Filters combine: a project must
  match all of them. Fee bounds are inclusive.
`
}

func (c *listProjectsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only projects with this status.")
	f.IntVar(&c.client, "client", 0, "Only projects for this client id.")
	f.StringVar(&c.minFee, "min-fee", "", "Only projects with a fee of at least this amount.")
	f.StringVar(&c.maxFee, "max-fee", "", "Only projects with a fee of at most this amount.")
}

func (c *listProjectsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filter freelance.ProjectFilter
	if c.status != "" {
		status, err := freelance.ParseStatus(c.status)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filter.Status = status
	}
	filter.ClientID = c.client
	if c.minFee != "" {
		min, err := decimal.NewFromString(c.minFee)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -min-fee %q: %v\n", c.minFee, err)
			return subcommands.ExitUsageError
		}
		filter.MinFee = &min
	}
	if c.maxFee != "" {
		max, err := decimal.NewFromString(c.maxFee)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -max-fee %q: %v\n", c.maxFee, err)
			return subcommands.ExitUsageError
		}
		filter.MaxFee = &max
	}

	session, cfg, cleanup, err := resumeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	b := session.Book()
	projects := slices.Collect(b.Projects(filter))
	printMarkdown(renderer.Projects(projects, clientNames(b), cfg.Currency))
	return subcommands.ExitSuccess
}
