// Modul: selector_render.go
// Beschreibung: Rendering-Funktionen fuer den Such-Selector.
// Zeichnet Prompt und sichtbare Kandidaten und merkt sich die exakte Hoehe
// des letzten Frames, damit Clear genau diese Zeilen entfernt.

package selector

import (
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/pheen/fuzzyhistory/readline"
)

// Renderer zeichnet Frames auf w
type Renderer struct {
	w     io.Writer
	theme Theme
	cols  int

	// height zaehlt die Koerperzeilen des letzten Frames, umbrochene
	// Eintraege mit allen belegten Zeilen. promptHeight wird pro Frame neu gesetzt.
	height       int
	promptHeight int
}

func NewRenderer(w io.Writer, theme Theme) *Renderer {
	return &Renderer{w: w, theme: theme}
}

// SetColumns setzt die Terminalbreite fuer den naechsten Frame
func (r *Renderer) SetColumns(cols int) {
	r.cols = cols
}

// Height ist die Gesamthoehe des zuletzt gezeichneten Frames
func (r *Renderer) Height() int {
	return r.promptHeight + r.height
}

// rows ist die Anzahl Terminalzeilen, die line belegt
func (r *Renderer) rows(line string) int {
	w := lipgloss.Width(line)
	if r.cols <= 0 || w <= r.cols {
		return 1
	}
	return (w + r.cols - 1) / r.cols
}

// Prompt beginnt einen neuen Frame
func (r *Renderer) Prompt(label, before, after string) error {
	line := r.theme.Prompt(label, displayText(before), displayText(after))
	if _, err := io.WriteString(r.w, line+"\r\n"); err != nil {
		return err
	}
	r.promptHeight = r.rows(line)
	r.height = 0
	return nil
}

// Item zeichnet einen Kandidaten. query bestimmt die hervorgehobenen Stellen.
func (r *Renderer) Item(text, query string, active, highlight bool) error {
	display := displayText(text)

	var matches [][2]int
	if highlight {
		matches = matchRanges(display, query)
	}

	line := r.theme.Item(display, active, matches)
	if _, err := io.WriteString(r.w, line+"\r\n"); err != nil {
		return err
	}
	r.height += r.rows(line)
	return nil
}

// Empty zeichnet den Hinweis fuer eine leere Trefferliste
func (r *Renderer) Empty() error {
	line := r.theme.Empty()
	if _, err := io.WriteString(r.w, line+"\r\n"); err != nil {
		return err
	}
	r.height += r.rows(line)
	return nil
}

// Clear entfernt genau die Zeilen des letzten Frames
func (r *Renderer) Clear() error {
	n := r.Height()
	r.height = 0
	r.promptHeight = 0
	if n == 0 {
		return nil
	}
	_, err := io.WriteString(r.w, readline.CursorBOL+readline.CursorUpN(n)+readline.ClearDown)
	return err
}

// displayText ersetzt Steuerzeichen, damit jeder Kandidat genau eine
// logische Zeile belegt
func displayText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return '↵'
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return '?'
		}
		return r
	}, s)
}

// matchRanges findet die Tokens von query in Reihenfolge in text und gibt
// ihre Byte-Bereiche zurueck; nil wenn nicht alle Tokens vorkommen
func matchRanges(text, query string) [][2]int {
	var ranges [][2]int
	from := 0
	for _, tok := range strings.Fields(query) {
		i := strings.Index(text[from:], tok)
		if i < 0 {
			return nil
		}
		start := from + i
		ranges = append(ranges, [2]int{start, start + len(tok)})
		from = start + len(tok)
	}
	return ranges
}
