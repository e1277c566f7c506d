// Modul: selector_theme.go
// Beschreibung: Darstellungsvarianten des Selectors.
// Colorful nutzt lipgloss-Styles, Simple reinen Text.

package selector

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme formatiert Prompt und Eintraege zu je einer Zeile ohne Zeilenumbruch
type Theme interface {
	Prompt(label, before, after string) string
	Item(text string, active bool, matches [][2]int) string
	Empty() string
}

// newTheme waehlt die Variante; w wird nur zur Farberkennung benutzt
func newTheme(kind ThemeKind, w io.Writer, color ColorMode) Theme {
	if kind == ThemeSimple {
		return simpleTheme{}
	}
	return newColorfulTheme(w, color)
}

type simpleTheme struct{}

func (simpleTheme) Prompt(label, before, after string) string {
	if label != "" {
		label += " "
	}
	return label + before + "|" + after
}

func (simpleTheme) Item(text string, active bool, _ [][2]int) string {
	if active {
		return "> " + text
	}
	return "  " + text
}

func (simpleTheme) Empty() string {
	return "  (no matches)"
}

type colorfulTheme struct {
	label  lipgloss.Style
	cursor lipgloss.Style
	marker lipgloss.Style
	active lipgloss.Style
	match  lipgloss.Style
	dim    lipgloss.Style
}

func newColorfulTheme(w io.Writer, color ColorMode) *colorfulTheme {
	r := lipgloss.NewRenderer(w)
	switch color {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &colorfulTheme{
		label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		cursor: r.NewStyle().Reverse(true),
		marker: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		active: r.NewStyle().Bold(true),
		match:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (t *colorfulTheme) Prompt(label, before, after string) string {
	var sb strings.Builder
	if label != "" {
		sb.WriteString(t.label.Render(label))
		sb.WriteString(" ")
	}
	sb.WriteString(before)

	// Der Cursor markiert das Zeichen unter ihm, am Ende ein Leerzeichen
	if after == "" {
		sb.WriteString(t.cursor.Render(" "))
	} else {
		r := []rune(after)
		sb.WriteString(t.cursor.Render(string(r[0])))
		sb.WriteString(string(r[1:]))
	}
	return sb.String()
}

func (t *colorfulTheme) Item(text string, active bool, matches [][2]int) string {
	var sb strings.Builder
	if active {
		sb.WriteString(t.marker.Render(">"))
		sb.WriteString(" ")
	} else {
		sb.WriteString("  ")
	}

	plain := func(s string) {
		if active {
			s = t.active.Render(s)
		}
		sb.WriteString(s)
	}

	pos := 0
	for _, m := range matches {
		if m[0] > pos {
			plain(text[pos:m[0]])
		}
		sb.WriteString(t.match.Render(text[m[0]:m[1]]))
		pos = m[1]
	}
	if pos < len(text) {
		plain(text[pos:])
	}
	return sb.String()
}

func (t *colorfulTheme) Empty() string {
	return "  " + t.dim.Render("(no matches)")
}
