package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avlt/freelance"
	"github.com/avlt/freelance/renderer"
	"github.com/google/subcommands"
)

type earningsCmd struct {
	window string
	date   string
}

func (*earningsCmd) Name() string     { return "earnings" }
func (*earningsCmd) Synopsis() string { return "show monthly earnings from completed projects" }
func (*earningsCmd) Usage() string {
	return `lance earnings [-w <window>] [-d <date>]

  Groups completed project fees by deadline month. The window is one of
  'all', 'year', 'quarter' or 'month', measured against -d (default today).
`
}

func (c *earningsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "all", "Time window: 'all', 'year', 'quarter' or 'month'.")
	f.StringVar(&c.date, "d", "", "Reference date for the window as YYYY-MM-DD, default today.")
}

func (c *earningsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := freelance.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ref := freelance.Today()
	if c.date != "" {
		ref, err = freelance.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -d %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
	}

	session, cfg, cleanup, err := resumeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	rows := session.Book().EarningsBreakdown(window, ref, cfg.Currency)
	printMarkdown(renderer.Earnings(rows, window))
	return subcommands.ExitSuccess
}
