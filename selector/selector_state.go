// Modul: selector_state.go
// Beschreibung: State-Management und Input-Handling des Such-Selectors.
// Verwaltet Suchtext, Kandidaten, Auswahl und sichtbares Fenster.

package selector

import (
	"context"
	"fmt"
	"unicode"

	"github.com/pheen/fuzzyhistory/readline"
)

// State ist der Zustand einer Sitzung.
//
// Invarianten: selected ist -1 wenn keine Zeile ausgewaehlt ist und immer -1
// bei leerer Kandidatenliste, sonst 0 <= selected < len(candidates). Ist eine
// Zeile ausgewaehlt, gilt viewportStart <= selected < viewportStart+viewportHeight.
type State struct {
	backend Backend

	buf            *readline.Buffer
	candidates     []string
	selected       int
	viewportStart  int
	viewportHeight int
	allowQuit      bool
}

// NewState erstellt den Zustand und fuehrt die erste Suche aus
func NewState(ctx context.Context, backend Backend, opts Options, viewportHeight int) (*State, error) {
	s := &State{
		backend:        backend,
		buf:            readline.NewBuffer(opts.InitialText),
		selected:       -1,
		viewportHeight: max(viewportHeight, 1),
		allowQuit:      !opts.DisableQuit,
	}

	if err := s.requery(ctx); err != nil {
		return nil, err
	}

	if len(s.candidates) > 0 && !opts.StartUnselected {
		s.selected = min(max(opts.DefaultSelection, 0), len(s.candidates)-1)
		s.viewportStart = max(0, s.selected-s.viewportHeight+1)
	}

	return s, nil
}

func (s *State) Query() string        { return s.buf.String() }
func (s *State) Cursor() int          { return s.buf.Pos }
func (s *State) Candidates() []string { return s.candidates }

// Selected gibt die ausgewaehlte Zeile zurueck, ok ist false ohne Auswahl
func (s *State) Selected() (int, bool) {
	return s.selected, s.selected >= 0
}

// Viewport gibt Anfang und Hoehe des sichtbaren Fensters zurueck
func (s *State) Viewport() (start, height int) {
	return s.viewportStart, s.viewportHeight
}

// Visible gibt die Kandidaten im sichtbaren Fenster zurueck
func (s *State) Visible() []string {
	start := min(s.viewportStart, len(s.candidates))
	end := min(start+s.viewportHeight, len(s.candidates))
	return s.candidates[start:end]
}

// Apply verarbeitet genau ein Tastenereignis. Ein Fehler entsteht nur, wenn
// die Suche nach einer Aenderung des Suchtexts fehlschlaegt.
func (s *State) Apply(ctx context.Context, ev readline.Event) (Result, error) {
	hasCandidates := len(s.candidates) > 0

	switch {
	case ev.Key == readline.KeyEscape && s.allowQuit:
		return Result{Outcome: Cancelled}, nil
	case (ev.Key == readline.KeyUp || ev.Key == readline.KeyBackTab) && hasCandidates:
		s.selectPrev()
	case (ev.Key == readline.KeyDown || ev.Key == readline.KeyTab) && hasCandidates:
		s.selectNext()
	case ev.Key == readline.KeyLeft:
		s.buf.MoveLeft()
	case ev.Key == readline.KeyRight:
		s.buf.MoveRight()
	case ev.Key == readline.KeyBackspace:
		if s.buf.Remove() {
			if err := s.requery(ctx); err != nil {
				return Result{}, err
			}
			s.resetSelection()
		}
	case ev.Key == readline.KeyChar && unicode.IsPrint(ev.Rune):
		s.buf.Add(ev.Rune)
		if err := s.requery(ctx); err != nil {
			return Result{}, err
		}
		s.resetSelection()
	case ev.Key == readline.KeyEnter && s.selected >= 0 && hasCandidates:
		return Result{Outcome: Confirmed, Text: s.candidates[s.selected]}, nil
	}

	return Result{Outcome: Active}, nil
}

// selectPrev waehlt die vorherige Zeile; von 0 (oder ohne Auswahl) geht es
// ans Ende der Liste, das Fenster zeigt dann die letzten Zeilen.
func (s *State) selectPrev() {
	n := len(s.candidates)
	if s.selected <= 0 {
		s.selected = n - 1
		s.viewportStart = max(n, s.viewportHeight) - s.viewportHeight
		return
	}

	if s.selected == s.viewportStart {
		s.viewportStart--
	}
	s.selected--
}

// selectNext waehlt die naechste Zeile modulo Anzahl
func (s *State) selectNext() {
	n := len(s.candidates)
	if s.selected < 0 {
		s.selected = 0
	} else {
		s.selected = (s.selected + 1) % n
	}

	switch {
	case s.selected == 0:
		s.viewportStart = 0
	case s.selected >= s.viewportStart+s.viewportHeight:
		s.viewportStart = s.selected - s.viewportHeight + 1
	}
}

// resetSelection gilt nach jeder Aenderung des Suchtexts, auch nach Backspace
func (s *State) resetSelection() {
	s.viewportStart = 0
	if len(s.candidates) == 0 {
		s.selected = -1
		return
	}
	s.selected = 0
}

func (s *State) requery(ctx context.Context) error {
	candidates, err := s.backend.Search(ctx, s.buf.String())
	if err != nil {
		return fmt.Errorf("search %q: %w", s.buf.String(), err)
	}
	s.candidates = candidates
	return nil
}
