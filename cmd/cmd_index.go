// cmd_index.go - Verwaltung des Index-Verzeichnisses
// Hauptfunktionen: ImportHandler, DeleteIndexHandler
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pheen/fuzzyhistory/envconfig"
)

// ImportHandler - Platzhalter, importiert noch nichts
func ImportHandler(cmd *cobra.Command, args []string) error {
	return nil
}

// DeleteIndexHandler - Entfernt das Index-Verzeichnis samt Datenbank und Log
func DeleteIndexHandler(cmd *cobra.Command, args []string) error {
	dir := envconfig.HistoryDir()
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("delete index %s: %w", dir, err)
	}
	return nil
}
