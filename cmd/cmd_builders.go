// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newSearchCmd, newAddCmd, newImportCmd, newDeleteIndexCmd, newListCmd
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pheen/fuzzyhistory/history"
)

// newSearchCmd - Erstellt den search Command
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search TTY_PATH [QUERY]",
		Short: "Start a search client, the same as what's invoked from the keybind ^R",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  SearchHandler,
	}
}

// newAddCmd - Erstellt den add Command
func newAddCmd(parser *history.EntryParser) *cobra.Command {
	return &cobra.Command{
		Use:   "add \"<exit code>:<command>\"",
		Short: "Write a command to the index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return AddHandler(cmd, parser, args[0])
		},
	}
}

// newImportCmd - Erstellt den import Command
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Index command history for the current shell",
		Args:  cobra.ArbitraryArgs,
		RunE:  ImportHandler,
	}
}

// newDeleteIndexCmd - Erstellt den delete_index Command
func newDeleteIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete_index",
		Short: "Remove all indexed command history",
		Args:  cobra.NoArgs,
		RunE:  DeleteIndexHandler,
	}
}

// newListCmd - Erstellt den list Command
func newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the most recently indexed commands",
		Args:    cobra.NoArgs,
		RunE:    ListHandler,
	}

	listCmd.Flags().IntP("limit", "n", 20, "Number of commands to show")

	return listCmd
}
