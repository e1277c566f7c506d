// Modul: selector_types.go
// Beschreibung: Typen, Optionen und Schnittstellen des Such-Selectors.
// Enthaelt Options, Backend, Terminal, Outcome und Result.

package selector

import (
	"context"
	"fmt"
	"io"
)

// Backend liefert die Kandidaten fuer einen Suchtext, bestes zuerst
type Backend interface {
	Search(ctx context.Context, text string) ([]string, error)
}

// Terminal ist das Eingabegeraet im Raw-Mode
type Terminal interface {
	io.Reader
	Size() (rows, cols int)
}

// ThemeKind waehlt die Darstellung
type ThemeKind string

const (
	ThemeColorful ThemeKind = "colorful"
	ThemeSimple   ThemeKind = "simple"
)

// ParseThemeKind akzeptiert "colorful", "simple" oder "" (colorful)
func ParseThemeKind(s string) (ThemeKind, error) {
	switch ThemeKind(s) {
	case "", ThemeColorful:
		return ThemeColorful, nil
	case ThemeSimple:
		return ThemeSimple, nil
	}
	return "", fmt.Errorf("unknown theme %q (want %q or %q)", s, ThemeColorful, ThemeSimple)
}

// ColorMode steuert die Farberkennung des Colorful-Themes
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("unknown color mode %q", s)
}

// Options wird vor der Sitzung zusammengestellt und danach nicht mehr veraendert
type Options struct {
	// Prompt steht vor dem Suchtext
	Prompt string

	// InitialText ist der Suchtext beim Start, Cursor am Ende
	InitialText string

	// DefaultSelection ist die anfangs ausgewaehlte Zeile
	DefaultSelection int

	// StartUnselected startet ohne Auswahl, der erste Pfeil waehlt aus
	StartUnselected bool

	// MaxRows begrenzt die sichtbaren Kandidaten (0 = Terminalhoehe)
	MaxRows int

	Theme ThemeKind
	Color ColorMode

	// DisableQuit ignoriert Escape
	DisableQuit bool

	// NoHighlight schaltet die Hervorhebung der Treffer ab
	NoHighlight bool
}

// Outcome ist der Zustand einer Sitzung
type Outcome int

const (
	Active Outcome = iota
	Confirmed
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Active:
		return "active"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result ist das Ergebnis eines Tastendrucks. Text ist nur bei Confirmed gesetzt.
type Result struct {
	Outcome Outcome
	Text    string
}
