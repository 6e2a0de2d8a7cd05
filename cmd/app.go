// Package cmd implements the CLI application to manage a freelancer book.
package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/avlt/freelance"
	"github.com/google/subcommands"
)

// Commands lists the subcommands.
// A main package registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&loginCmd{},
	&logoutCmd{},
	&statusCmd{},

	&addClientCmd{},
	&listClientsCmd{},
	&editClientCmd{},
	&rmClientCmd{},

	&addProjectCmd{},
	&listProjectsCmd{},
	&editProjectCmd{},
	&rmProjectCmd{},
	&doneCmd{},

	&statsCmd{},
	&earningsCmd{},

	&exportCmd{},
	&importClientsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (defaults to $LANCE_CONFIG)")

// openStore opens the configured store backend.
func openStore(cfg Config) (freelance.Store, error) {
	switch cfg.Store {
	case "", "dir":
		return freelance.OpenDirStore(cfg.DataDir)
	case "sqlite":
		return freelance.OpenSQLiteStore(cfg.DatabasePath())
	default:
		return nil, fmt.Errorf("unknown store backend %q (valid: dir, sqlite)", cfg.Store)
	}
}

// closeStore releases the store when the backend holds resources.
func closeStore(s freelance.Store) {
	if c, ok := s.(io.Closer); ok {
		c.Close()
	}
}

// resumeSession opens the store and re-establishes the persisted session.
// The returned cleanup must be called when the command is done.
func resumeSession() (*freelance.Session, Config, func(), error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, cfg, nil, err
	}
	store, err := openStore(cfg)
	if err != nil {
		return nil, cfg, nil, err
	}
	cleanup := func() { closeStore(store) }

	session := freelance.NewSession(store)
	ok, err := session.Resume()
	if err != nil {
		cleanup()
		return nil, cfg, nil, err
	}
	if !ok {
		cleanup()
		return nil, cfg, nil, fmt.Errorf("not logged in, run 'lance login <username>' first")
	}
	return session, cfg, cleanup, nil
}

// clientNames maps client ids to display names for project listings.
func clientNames(b *freelance.Book) map[int]string {
	names := make(map[int]string)
	for c := range b.Clients() {
		names[c.ID] = c.Name
	}
	return names
}
