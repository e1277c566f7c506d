// cmd_utils.go - Hilfsfunktionen fuer CLI-Commands
// Hauptfunktionen: setupLogging, selectorOptions
package cmd

import (
	"io"
	"log/slog"

	"github.com/pheen/fuzzyhistory/envconfig"
	"github.com/pheen/fuzzyhistory/logutil"
	"github.com/pheen/fuzzyhistory/selector"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging - Leitet slog in die Log-Datei des Index-Verzeichnisses.
// Schlaegt das fehl, laeuft das Kommando ohne Log weiter.
func setupLogging(dir string) io.Closer {
	closer, err := logutil.Setup(dir, envconfig.LogLevel())
	if err != nil {
		slog.SetDefault(logutil.NewLogger(io.Discard, slog.LevelError))
		return nopCloser{}
	}
	return closer
}

// selectorOptions - Baut die Optionen einer Sitzung aus der Konfiguration
func selectorOptions(s envconfig.Settings, query string) (selector.Options, error) {
	theme, err := selector.ParseThemeKind(s.Theme)
	if err != nil {
		return selector.Options{}, err
	}

	color, err := selector.ParseColorMode(s.Color)
	if err != nil {
		return selector.Options{}, err
	}

	return selector.Options{
		Prompt:      s.Prompt,
		InitialText: query,
		MaxRows:     int(s.MaxRows),
		Theme:       theme,
		Color:       color,
		NoHighlight: s.NoHighlight,
	}, nil
}
