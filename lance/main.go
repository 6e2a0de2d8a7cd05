package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/avlt/freelance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// Shell completion, active when invoked by the completion hook.
	complete.CommandLine()

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
