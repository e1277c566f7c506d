// cmd_add.go - Kommandos in den Index schreiben
// Hauptfunktionen: AddHandler
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pheen/fuzzyhistory/envconfig"
	"github.com/pheen/fuzzyhistory/history"
)

// AddHandler - Prueft "<exit code>:<command>" und speichert den Eintrag
// mit aktuellem Verzeichnis und Zeitstempel. Leere Kommandos werden
// ohne Fehler uebersprungen.
func AddHandler(cmd *cobra.Command, parser *history.EntryParser, input string) error {
	dir := envconfig.HistoryDir()
	defer setupLogging(dir).Close() //nolint:errcheck

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	entry, err := parser.Parse(input, cwd)
	if err != nil {
		return fmt.Errorf("indexing failed, the command doesn't match the pattern \"<exit code>:<command>\"\nfailed input: %q: %w", input, err)
	}

	if strings.TrimSpace(entry.Command) == "" {
		slog.Debug("skipping empty command", "exit_code", entry.ExitCode)
		return nil
	}

	store := history.NewStore(dir)
	defer store.Close() //nolint:errcheck

	record, err := store.Add(cmd.Context(), entry, time.Now())
	if err != nil {
		return err
	}

	slog.Debug("indexed command", "id", record.ID, "exit_code", record.ExitCode, "directory", record.Directory)
	return nil
}
