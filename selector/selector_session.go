// Modul: selector_session.go
// Beschreibung: Ereignisschleife des Such-Selectors.
// Taste lesen -> Zustand aendern -> ggf. neu suchen -> zeichnen -> loeschen,
// bis Auswahl bestaetigt oder abgebrochen wird.

package selector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pheen/fuzzyhistory/readline"
)

// Session fuehrt genau eine interaktive Suche aus
type Session struct {
	opts    Options
	backend Backend
	term    Terminal

	out     *bufio.Writer
	decoder *readline.Decoder
	render  *Renderer
}

// NewSession erstellt eine Sitzung. Eingaben kommen von term, gezeichnet
// wird auf out (normalerweise stderr, damit stdout das Ergebnis traegt).
func NewSession(opts Options, backend Backend, term Terminal, out io.Writer) *Session {
	w := bufio.NewWriter(out)
	return &Session{
		opts:    opts,
		backend: backend,
		term:    term,
		out:     w,
		decoder: readline.NewDecoder(term),
		render:  NewRenderer(w, newTheme(opts.Theme, out, opts.Color)),
	}
}

// viewportHeight: Terminalzeilen minus Prompt und Reserve, optional begrenzt
func viewportHeight(rows, maxRows int) int {
	h := max(rows, 3) - 2
	if maxRows > 0 {
		h = min(h, maxRows)
	}
	return h
}

// Run blockiert bis zum Ergebnis. Der Terminal-Cursor ist waehrend der
// Sitzung versteckt und wird auf jedem Rueckweg wieder eingeblendet.
func (s *Session) Run(ctx context.Context) (res Result, err error) {
	if _, err := s.out.WriteString(readline.CursorHide); err != nil {
		return Result{}, fmt.Errorf("hide cursor: %w", err)
	}
	defer func() {
		//nolint:errcheck
		s.out.WriteString(readline.CursorShow)
		if ferr := s.out.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("restore cursor: %w", ferr)
		}
	}()

	rows, _ := s.term.Size()
	state, err := NewState(ctx, s.backend, s.opts, viewportHeight(rows, s.opts.MaxRows))
	if err != nil {
		return Result{}, err
	}

	for {
		if err := s.draw(state); err != nil {
			return Result{}, fmt.Errorf("draw: %w", err)
		}
		if err := s.out.Flush(); err != nil {
			return Result{}, fmt.Errorf("flush: %w", err)
		}

		ev, err := s.decoder.ReadKey()
		if err != nil {
			_ = s.render.Clear()
			return Result{}, fmt.Errorf("read key: %w", err)
		}

		res, err := state.Apply(ctx, ev)
		if cerr := s.render.Clear(); cerr != nil && err == nil {
			err = fmt.Errorf("clear: %w", cerr)
		}
		if err != nil {
			return Result{}, err
		}

		if res.Outcome != Active {
			slog.Debug("selector finished", "outcome", res.Outcome, "query", state.Query())
			return res, nil
		}
	}
}

func (s *Session) draw(state *State) error {
	_, cols := s.term.Size()
	s.render.SetColumns(cols)

	if err := s.render.Prompt(s.opts.Prompt, state.buf.BeforeCursor(), state.buf.AfterCursor()); err != nil {
		return err
	}

	visible := state.Visible()
	if len(visible) == 0 {
		return s.render.Empty()
	}

	start, _ := state.Viewport()
	sel, ok := state.Selected()
	query := state.Query()
	for i, c := range visible {
		if err := s.render.Item(c, query, ok && start+i == sel, !s.opts.NoHighlight); err != nil {
			return err
		}
	}
	return nil
}
