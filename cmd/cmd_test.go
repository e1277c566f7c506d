package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/pheen/fuzzyhistory/envconfig"
	"github.com/pheen/fuzzyhistory/history"
	"github.com/pheen/fuzzyhistory/logutil"
	"github.com/pheen/fuzzyhistory/selector"
)

// execute fuehrt die CLI mit einem frischen Index-Verzeichnis aus
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cli := NewCLI()
	cli.SetOut(&out)
	cli.SetErr(&out)
	cli.SetArgs(args)
	err := cli.ExecuteContext(context.Background())
	return out.String(), err
}

func useTempIndex(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "index")
	t.Setenv("FUZZY_HISTORY_DIR", dir)
	return dir
}

func TestUsage(t *testing.T) {
	useTempIndex(t)

	for _, args := range [][]string{nil, {"foo"}, {"foo", "bar"}} {
		out, err := execute(t, args...)
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		for _, want := range []string{"search", "add", "import", "delete_index"} {
			if !strings.Contains(out, want) {
				t.Errorf("%v: Hilfe ohne %q:\n%s", args, want, out)
			}
		}
	}
}

func TestAddAndList(t *testing.T) {
	useTempIndex(t)

	for _, payload := range []string{"0:git status", "1:echo a:b", "0:printf 'x\ny'"} {
		_, err := execute(t, "add", payload)
		require.NoError(t, err, payload)
	}

	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, out)
	require.Contains(t, lines[0], "COMMAND")
	// neueste zuerst
	require.Contains(t, lines[1], "printf 'x↵y'")
	require.Contains(t, lines[2], "echo a:b")
	require.Contains(t, lines[3], "git status")

	out, err = execute(t, "list", "--limit", "1")
	require.NoError(t, err)
	require.NotContains(t, out, "git status")

	_, err = execute(t, "list", "--limit", "0")
	require.Error(t, err)
}

func TestListTruncatesLongCommands(t *testing.T) {
	useTempIndex(t)

	long := "echo " + strings.Repeat("x", 120)
	_, err := execute(t, "add", "0:"+long)
	require.NoError(t, err)

	out, err := execute(t, "list")
	require.NoError(t, err)
	require.NotContains(t, out, long)
	require.Contains(t, out, "…")
}

func TestAddInvalid(t *testing.T) {
	dir := useTempIndex(t)

	for _, payload := range []string{"git status", ":ls", "x:ls"} {
		_, err := execute(t, "add", payload)
		if !errors.Is(err, history.ErrInvalidEntry) {
			t.Errorf("%q: Fehler = %v, erwartet ErrInvalidEntry", payload, err)
			continue
		}
		if !strings.Contains(err.Error(), "failed input") {
			t.Errorf("%q: Eingabe fehlt in der Meldung: %v", payload, err)
		}
	}

	records, err := history.NewStore(dir).Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestAddEmptyCommand(t *testing.T) {
	dir := useTempIndex(t)

	for _, payload := range []string{"0:", "130:  "} {
		_, err := execute(t, "add", payload)
		require.NoError(t, err, payload)
	}

	store := history.NewStore(dir)
	defer store.Close()
	records, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestDeleteIndex(t *testing.T) {
	dir := useTempIndex(t)

	_, err := execute(t, "add", "0:ls")
	require.NoError(t, err)
	require.DirExists(t, dir)

	_, err = execute(t, "delete_index")
	require.NoError(t, err)
	require.NoDirExists(t, dir)

	// Ein fehlendes Verzeichnis ist kein Fehler
	_, err = execute(t, "delete_index")
	require.NoError(t, err)
}

func TestImport(t *testing.T) {
	useTempIndex(t)

	out, err := execute(t, "import")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestSearchRequiresTerminal(t *testing.T) {
	dir := useTempIndex(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	notATTY := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(notATTY, nil, 0o644))

	_, err := execute(t, "search", notATTY)
	require.Error(t, err)

	_, err = execute(t, "search")
	require.Error(t, err)
}

func TestSearchLogsConfiguration(t *testing.T) {
	dir := useTempIndex(t)
	t.Setenv("FUZZY_HISTORY_DEBUG", "1")
	t.Setenv("FUZZY_HISTORY_THEME", "simple")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	notATTY := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(notATTY, nil, 0o644))

	_, err := execute(t, "search", notATTY)
	require.Error(t, err)

	log, err := os.ReadFile(filepath.Join(dir, logutil.FileName))
	require.NoError(t, err)
	require.Contains(t, string(log), "search session")
	require.Contains(t, string(log), "FUZZY_HISTORY_THEME:simple")
}

type staticBackend []string

func (b staticBackend) Search(context.Context, string) ([]string, error) {
	return b, nil
}

type scriptedTerminal struct {
	*strings.Reader
}

func (scriptedTerminal) Size() (int, int) { return 24, 80 }

func TestRunSearch(t *testing.T) {
	backend := staticBackend{"git status", "git push"}
	opts := selector.Options{Theme: selector.ThemeSimple}

	cases := []struct {
		name, input, want string
	}{
		{"bestaetigt", "\r", "git status"},
		{"zweiter Eintrag", "\x1b[B\r", "git push"},
		{"abgebrochen", "\x1b", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var render, out bytes.Buffer
			err := runSearch(context.Background(), opts, backend, scriptedTerminal{strings.NewReader(tc.input)}, &render, &out)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Errorf("stdout abweichend (-erwartet +erhalten):\n%s", diff)
			}
			require.True(t, strings.HasSuffix(render.String(), "\x1b[?25h"), "Cursor nicht wiederhergestellt")
		})
	}
}

func TestSelectorOptions(t *testing.T) {
	got, err := selectorOptions(envconfig.Settings{
		Theme:       "simple",
		Prompt:      "hist>",
		Color:       "never",
		MaxRows:     5,
		NoHighlight: true,
	}, "git")
	require.NoError(t, err)

	want := selector.Options{
		Prompt:      "hist>",
		InitialText: "git",
		MaxRows:     5,
		Theme:       selector.ThemeSimple,
		Color:       selector.ColorNever,
		NoHighlight: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Options abweichend (-erwartet +erhalten):\n%s", diff)
	}

	_, err = selectorOptions(envconfig.Settings{Theme: "neon"}, "")
	require.Error(t, err)

	_, err = selectorOptions(envconfig.Settings{Color: "sometimes"}, "")
	require.Error(t, err)
}
