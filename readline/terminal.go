// Package readline - Terminal-Modul
//
// Dieses Modul kapselt das Eingabegeraet (z.B. /dev/tty), das die Shell
// dem search-Kommando uebergibt.
//
// Hauptkomponenten:
// - Terminal: Raw-Mode, Groesse und Lesen ueber containerd/console
// - Open: Oeffnet ein Terminal ueber seinen Pfad

package readline

import (
	"fmt"
	"os"

	"github.com/containerd/console"
	"golang.org/x/term"
)

// Fallback wenn die Groesse nicht abgefragt werden kann
const (
	defaultRows = 24
	defaultCols = 80
)

// Terminal verwaltet das Eingabegeraet im Raw-Mode
type Terminal struct {
	file    *os.File
	console console.Console
	rawmode bool
}

// Open oeffnet path und prueft, dass es ein Terminal ist
func Open(path string) (*Terminal, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open terminal %q: %w", path, err)
	}

	c, err := console.ConsoleFromFile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%q is not a terminal: %w", path, err)
	}

	return &Terminal{file: f, console: c}, nil
}

// SetRaw schaltet das Terminal in den Raw-Mode
func (t *Terminal) SetRaw() error {
	if t.rawmode {
		return nil
	}
	if err := t.console.SetRaw(); err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	t.rawmode = true
	return nil
}

// Restore stellt den urspruenglichen Terminal-Modus wieder her
func (t *Terminal) Restore() error {
	if !t.rawmode {
		return nil
	}
	t.rawmode = false
	return t.console.Reset()
}

func (t *Terminal) Read(p []byte) (int, error) {
	return t.console.Read(p)
}

// Size gibt Zeilen und Spalten zurueck
func (t *Terminal) Size() (rows, cols int) {
	if ws, err := t.console.Size(); err == nil && ws.Height > 0 && ws.Width > 0 {
		return int(ws.Height), int(ws.Width)
	}
	if w, h, err := term.GetSize(int(t.file.Fd())); err == nil {
		return h, w
	}
	return defaultRows, defaultCols
}

// Close stellt den Modus wieder her und schliesst das Geraet
func (t *Terminal) Close() error {
	//nolint:errcheck
	t.Restore()
	return t.console.Close()
}
