// Modul: entry.go
// Beschreibung: Validierung der add-Eingabe "<exit code>:<command>".

package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// EntryParser prueft und zerlegt add-Eingaben. Einmal pro Prozess erzeugen
// und an die Aufrufer weiterreichen.
type EntryParser struct {
	re *regexp2.Regexp
}

func NewEntryParser() *EntryParser {
	return &EntryParser{re: regexp2.MustCompile(`^(\d+):(.*)$`, regexp2.Singleline)}
}

// Parse liefert Exit-Code und Kommando. Das Kommando ist alles nach dem
// ersten Doppelpunkt und darf selbst Doppelpunkte enthalten. "0:" ergibt ein
// leeres Kommando; ob es gespeichert wird, entscheidet der Aufrufer.
func (p *EntryParser) Parse(text string, dir string) (Entry, error) {
	text = strings.TrimSpace(text)

	m, err := p.re.FindStringMatch(text)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	if m == nil {
		return Entry{}, ErrInvalidEntry
	}

	code, err := strconv.ParseInt(m.GroupByNumber(1).String(), 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: exit code: %w", ErrInvalidEntry, err)
	}

	return Entry{
		ExitCode:  code,
		Directory: dir,
		Command:   m.GroupByNumber(2).String(),
	}, nil
}
