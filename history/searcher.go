// Modul: searcher.go
// Beschreibung: Such-Backend fuer den interaktiven Selector.
// Bindet Store, aktuelles Verzeichnis und Uhr an eine einfache
// Search(ctx, text)-Schnittstelle.

package history

import (
	"context"
	"log/slog"
	"time"
)

// Searcher liefert die Kandidaten fuer den aktuellen Suchtext
type Searcher struct {
	Store *Store

	// Dir ist das Arbeitsverzeichnis des Aufrufers
	Dir string

	// Now ist fuer Tests austauschbar; nil bedeutet time.Now
	Now func() time.Time
}

// Search gibt hoechstens MaxCandidates Kommandos zurueck, bestes zuerst
func (s *Searcher) Search(ctx context.Context, text string) ([]string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	start := time.Now()
	matches, err := s.Store.Search(ctx, Query{
		Text:      text,
		Directory: s.Dir,
		Limit:     MaxCandidates,
		Now:       now(),
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]string, len(matches))
	for i, m := range matches {
		candidates[i] = m.Command
	}

	slog.Debug("history search", "query", text, "results", len(candidates), "duration", time.Since(start))
	return candidates, nil
}
