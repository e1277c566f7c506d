// Package readline - Typen und Konstanten
//
// Dieses Modul enthaelt die Steuerzeichen, ANSI-Sequenzen und die
// logischen Tastenereignisse, die der Decoder liefert.

package readline

import "fmt"

// Steuerzeichen im Raw-Mode
const (
	CharNull      = 0
	CharInterrupt = 3
	CharCtrlH     = 8
	CharTab       = 9
	CharCtrlJ     = 10
	CharEnter     = 13
	CharEsc       = 27
	CharSpace     = 32
	CharBackspace = 127
)

// ANSI-Sequenzen fuer die Ausgabe
const (
	CursorHide = "\033[?25l"
	CursorShow = "\033[?25h"
	ClearDown  = "\033[J"
	CursorBOL  = "\r"
)

// CursorUpN bewegt den Cursor n Zeilen nach oben
func CursorUpN(n int) string {
	return fmt.Sprintf("\033[%dA", n)
}

// Key ist ein logisches Tastenereignis
type Key int

const (
	KeyOther Key = iota
	KeyChar
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyBackTab
	KeyEnter
	KeyEscape
)

var keyNames = map[Key]string{
	KeyOther:     "Other",
	KeyChar:      "Char",
	KeyBackspace: "Backspace",
	KeyUp:        "ArrowUp",
	KeyDown:      "ArrowDown",
	KeyLeft:      "ArrowLeft",
	KeyRight:     "ArrowRight",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Event ist ein dekodiertes Tastenereignis. Rune ist nur bei KeyChar gesetzt.
type Event struct {
	Key  Key
	Rune rune
}

func (e Event) String() string {
	if e.Key == KeyChar {
		return fmt.Sprintf("Char(%q)", e.Rune)
	}
	return e.Key.String()
}
