// Modul: store_types.go
// Beschreibung: Typen, Konstanten und Fehler des History-Index.
// Enthaelt Record, Entry, Match und die Sentinel-Fehler.

package history

import (
	"errors"
	"time"
)

// MaxCandidates begrenzt die Trefferliste einer Suche
const MaxCandidates = 10

// RecencyPeriod ist das Fenster, in dem der Aktualitaets-Bonus von 1 auf 0
// faellt (ein durchschnittlicher Monat).
const RecencyPeriod = 2_629_800_000 * time.Millisecond

var (
	// ErrStorageUnavailable: Index konnte nicht geoeffnet oder abgefragt werden
	ErrStorageUnavailable = errors.New("history storage unavailable")

	// ErrInvalidEntry: add-Eingabe passt nicht auf "<exit code>:<command>"
	ErrInvalidEntry = errors.New(`entry does not match the pattern "<exit code>:<command>"`)
)

// Entry ist ein neuer Eintrag, wie ihn die Shell-Integration meldet
type Entry struct {
	ExitCode  int64
	Directory string
	Command   string
}

// Record ist ein gespeicherter Eintrag. TimesSelected wird angelegt,
// aber von keiner Suche gelesen.
type Record struct {
	ID            string
	CreatedMS     int64
	TimesSelected int64
	ExitCode      int64
	Directory     string
	Command       string
}

// Created gibt den Erstellungszeitpunkt zurueck
func (r Record) Created() time.Time {
	return time.UnixMilli(r.CreatedMS)
}

// Match ist ein bewerteter Treffer
type Match struct {
	Record

	Score          float64
	DirectoryBoost float64
	Recency        float64
	Relevance      float64
}

// Query beschreibt eine Suche gegen den Index
type Query struct {
	Text      string
	Directory string
	Limit     int
	Now       time.Time
}
