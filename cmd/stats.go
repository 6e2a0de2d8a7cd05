package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avlt/freelance/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show headline business figures" }
func (*statsCmd) Usage() string {
	return `lance stats

  Prints total earnings, completed project count, client counts and the
  average value of completed projects. Earnings only count completed
  projects.
`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (*statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, cfg, cleanup, err := resumeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	printMarkdown(renderer.Stats(session.Book().Stats(cfg.Currency)))
	return subcommands.ExitSuccess
}
