// Modul: search_rank.go
// Beschreibung: Bewertung der Treffer.
// Score = Verzeichnis-Bonus + Aktualitaet + Text-Relevanz.

package history

import (
	"time"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DirectoryBoost wird addiert, wenn ein Eintrag im aktuellen Verzeichnis entstand
const DirectoryBoost = 1.0

// RecencyBoost faellt linear von 1 (age 0) auf 0 (age >= RecencyPeriod).
// Zeitstempel aus der Zukunft zaehlen als age 0.
func RecencyBoost(age time.Duration) float64 {
	age = max(age, 0)
	return max(0, 1-float64(age.Milliseconds())/float64(RecencyPeriod.Milliseconds()))
}

// Relevance ist die normalisierte Levenshtein-Aehnlichkeit in [0, 1]
func Relevance(query, command string) float64 {
	n := max(utf8.RuneCountInString(query), utf8.RuneCountInString(command))
	if n == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(query, command))/float64(n)
}

func score(r Record, text, dir string, now time.Time) Match {
	m := Match{
		Record:    r,
		Recency:   RecencyBoost(now.Sub(r.Created())),
		Relevance: Relevance(text, r.Command),
	}
	if dir != "" && r.Directory == dir {
		m.DirectoryBoost = DirectoryBoost
	}
	m.Score = m.DirectoryBoost + m.Recency + m.Relevance
	return m
}
