// cmd_list.go - Zuletzt indizierte Kommandos anzeigen
// Hauptfunktionen: ListHandler
package cmd

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pheen/fuzzyhistory/envconfig"
	"github.com/pheen/fuzzyhistory/history"
)

// Maximale Spaltenbreiten, laengere Werte werden mit "…" gekuerzt
const (
	listDirWidth     = 40
	listCommandWidth = 80
)

// ListHandler - Listet die letzten Eintraege des Index auf
func ListHandler(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit <= 0 {
		return errors.New("--limit must be positive")
	}

	dir := envconfig.HistoryDir()
	defer setupLogging(dir).Close() //nolint:errcheck

	store := history.NewStore(dir)
	defer store.Close() //nolint:errcheck

	records, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	var data [][]string
	for _, r := range records {
		data = append(data, []string{
			r.Created().Local().Format(time.DateTime),
			strconv.FormatInt(r.ExitCode, 10),
			runewidth.Truncate(r.Directory, listDirWidth, "…"),
			runewidth.Truncate(strings.ReplaceAll(r.Command, "\n", "↵"), listCommandWidth, "…"),
		})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"TIME", "EXIT", "DIRECTORY", "COMMAND"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()

	return nil
}
