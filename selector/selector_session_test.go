package selector

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/pheen/fuzzyhistory/readline"
)

type fakeTerminal struct {
	io.Reader
	rows, cols int
}

func (t fakeTerminal) Size() (int, int) { return t.rows, t.cols }

func newFakeTerminal(input string) fakeTerminal {
	return fakeTerminal{Reader: strings.NewReader(input), rows: 24, cols: 80}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

var sessionItems = []string{"echo hi", "echo bye", "ls -la"}

func runSession(t *testing.T, input string, backend Backend, opts Options) (Result, string, error) {
	t.Helper()
	var out bytes.Buffer
	opts.Theme = ThemeSimple
	res, err := NewSession(opts, backend, newFakeTerminal(input), &out).Run(context.Background())
	return res, out.String(), err
}

func checkCursorRestored(t *testing.T, out string) {
	t.Helper()
	if !strings.HasPrefix(out, readline.CursorHide) {
		t.Errorf("Ausgabe beginnt nicht mit CursorHide: %q", out)
	}
	if !strings.HasSuffix(out, readline.CursorShow) {
		t.Errorf("Ausgabe endet nicht mit CursorShow: %q", out)
	}
}

func TestSessionConfirm(t *testing.T) {
	res, out, err := runSession(t, "\x1b[B\r", &fakeBackend{fallback: sessionItems}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != Confirmed || res.Text != "echo bye" {
		t.Errorf("Ergebnis = %+v, erwartet echo bye", res)
	}
	if !slices.Contains(sessionItems, res.Text) {
		t.Errorf("%q ist kein Kandidat", res.Text)
	}
	checkCursorRestored(t, out)

	// Zwei Frames zu je vier Zeilen, jeder wird genau einmal geloescht
	if got := strings.Count(out, "\r\x1b[4A\x1b[J"); got != 2 {
		t.Errorf("Clear fuer 4 Zeilen %d mal, erwartet 2:\n%q", got, out)
	}
	if strings.Contains(out, "\x1b[5A") {
		t.Errorf("Clear loescht mehr als gezeichnet:\n%q", out)
	}
}

func TestSessionTyping(t *testing.T) {
	b := &fakeBackend{
		fallback: sessionItems,
		results:  map[string][]string{"l": {"ls -la"}, "lq": nil},
	}
	res, out, err := runSession(t, "lq\x7f\r", b, Options{Prompt: "hist>"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != Confirmed || res.Text != "ls -la" {
		t.Errorf("Ergebnis = %+v, erwartet ls -la", res)
	}
	if !strings.Contains(out, "hist> lq|\r\n  (no matches)\r\n") {
		t.Errorf("leere Trefferliste nicht gezeichnet:\n%q", out)
	}
	if !strings.Contains(out, "hist> l|\r\n> ls -la\r\n") {
		t.Errorf("Frame nach Backspace fehlt:\n%q", out)
	}
	checkCursorRestored(t, out)
}

func TestSessionCancel(t *testing.T) {
	res, out, err := runSession(t, "ec\x1b", &fakeBackend{fallback: sessionItems}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != Cancelled || res.Text != "" {
		t.Errorf("Ergebnis = %+v, erwartet cancelled", res)
	}
	checkCursorRestored(t, out)
}

func TestSessionCtrlC(t *testing.T) {
	res, _, err := runSession(t, "\x03", &fakeBackend{fallback: sessionItems}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != Cancelled {
		t.Errorf("Ergebnis = %+v, erwartet cancelled", res)
	}
}

func TestSessionErrors(t *testing.T) {
	t.Run("Eingabe endet", func(t *testing.T) {
		_, out, err := runSession(t, "ec", &fakeBackend{fallback: sessionItems}, Options{})
		if !errors.Is(err, io.EOF) {
			t.Errorf("Fehler = %v, erwartet EOF", err)
		}
		checkCursorRestored(t, out)
		// der letzte Frame bleibt nicht auf dem Terminal stehen
		if !strings.HasSuffix(out, "\r\x1b[4A\x1b[J"+readline.CursorShow) {
			t.Errorf("letzter Frame nicht geloescht:\n%q", out)
		}
	})

	t.Run("Escape gesperrt", func(t *testing.T) {
		_, _, err := runSession(t, "\x1b", &fakeBackend{fallback: sessionItems}, Options{DisableQuit: true})
		if !errors.Is(err, io.EOF) {
			t.Errorf("Fehler = %v, erwartet EOF", err)
		}
	})

	t.Run("Backend faellt aus", func(t *testing.T) {
		errDown := errors.New("index gone")
		_, out, err := runSession(t, "x", &fakeBackend{err: errDown}, Options{})
		if !errors.Is(err, errDown) {
			t.Errorf("Fehler = %v, erwartet %v", err, errDown)
		}
		checkCursorRestored(t, out)
	})

	t.Run("Ausgabe kaputt", func(t *testing.T) {
		s := NewSession(Options{Theme: ThemeSimple}, &fakeBackend{fallback: sessionItems}, newFakeTerminal("\r"), failingWriter{})
		if _, err := s.Run(context.Background()); err == nil {
			t.Error("erwartete Schreibfehler")
		}
	})
}

func TestViewportHeight(t *testing.T) {
	cases := []struct{ rows, maxRows, want int }{
		{24, 0, 22},
		{24, 5, 5},
		{4, 10, 2},
		{0, 0, 1},
		{1, 3, 1},
	}
	for _, tc := range cases {
		if got := viewportHeight(tc.rows, tc.maxRows); got != tc.want {
			t.Errorf("viewportHeight(%d, %d) = %d, erwartet %d", tc.rows, tc.maxRows, got, tc.want)
		}
	}
}
