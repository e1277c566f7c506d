// cmd_search.go - Interaktive Suche
// Hauptfunktionen: SearchHandler, runSearch
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pheen/fuzzyhistory/envconfig"
	"github.com/pheen/fuzzyhistory/history"
	"github.com/pheen/fuzzyhistory/readline"
	"github.com/pheen/fuzzyhistory/selector"
)

// SearchHandler - Oeffnet das Terminal der Shell und startet den Selector.
// Gezeichnet wird auf stderr, die Auswahl geht ohne Zeilenumbruch nach stdout.
func SearchHandler(cmd *cobra.Command, args []string) error {
	settings, err := envconfig.Load()
	if err != nil {
		return err
	}

	defer setupLogging(settings.Dir).Close() //nolint:errcheck
	slog.Debug("search session", "env", envconfig.Values(), "settings", settings)

	var query string
	if len(args) > 1 {
		query = args[1]
	}

	opts, err := selectorOptions(settings, query)
	if err != nil {
		return err
	}

	tty, err := readline.Open(args[0])
	if err != nil {
		return err
	}
	defer tty.Close() //nolint:errcheck

	if err := tty.SetRaw(); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	store := history.NewStore(settings.Dir)
	defer store.Close() //nolint:errcheck

	backend := &history.Searcher{Store: store, Dir: cwd}
	return runSearch(cmd.Context(), opts, backend, tty, cmd.ErrOrStderr(), cmd.OutOrStdout())
}

// runSearch - Fuehrt eine Sitzung aus und schreibt das Ergebnis nach out
func runSearch(ctx context.Context, opts selector.Options, backend selector.Backend, term selector.Terminal, render, out io.Writer) error {
	res, err := selector.NewSession(opts, backend, term, render).Run(ctx)
	if err != nil {
		return err
	}

	if res.Outcome == selector.Confirmed {
		_, err = io.WriteString(out, res.Text)
	}
	return err
}
