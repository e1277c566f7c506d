// cmd.go - Haupt-CLI-Einstiegspunkt fuer fzh
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pheen/fuzzyhistory/envconfig"
	"github.com/pheen/fuzzyhistory/history"
)

// appendEnvDocs - Fuegt Environment-Variablen-Dokumentation zu Commands hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-28s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "fzh",
		Short:         "Interactive fuzzy search over indexed shell history",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		// Unbekannte Eingaben zeigen die Hilfe statt eines Fehlers
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	// Der Parser wird einmal pro Prozess erstellt
	parser := history.NewEntryParser()

	importCmd := newImportCmd()
	deleteIndexCmd := newDeleteIndexCmd()
	searchCmd := newSearchCmd()
	addCmd := newAddCmd(parser)
	listCmd := newListCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	dirEnvs := []envconfig.EnvVar{envVars["FUZZY_HISTORY_DIR"], envVars["FUZZY_HISTORY_DEBUG"]}

	for _, cmd := range []*cobra.Command{
		importCmd,
		deleteIndexCmd,
		addCmd,
		listCmd,
	} {
		appendEnvDocs(cmd, dirEnvs)
	}

	appendEnvDocs(searchCmd, append(dirEnvs,
		envVars["FUZZY_HISTORY_THEME"],
		envVars["FUZZY_HISTORY_COLOR"],
		envVars["FUZZY_HISTORY_PROMPT"],
		envVars["FUZZY_HISTORY_MAX_ROWS"],
		envVars["FUZZY_HISTORY_NO_HIGHLIGHT"],
	))

	rootCmd.AddCommand(
		importCmd,
		deleteIndexCmd,
		searchCmd,
		addCmd,
		listCmd,
	)

	return rootCmd
}
