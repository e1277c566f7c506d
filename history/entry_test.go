package history

import (
	"errors"
	"testing"
)

func TestEntryParser(t *testing.T) {
	p := NewEntryParser()

	tests := []struct {
		name    string
		input   string
		want    Entry
		wantErr bool
	}{
		{name: "einfach", input: "0:ls -la", want: Entry{ExitCode: 0, Directory: "/tmp", Command: "ls -la"}},
		{name: "Exit-Code", input: "127:foo", want: Entry{ExitCode: 127, Directory: "/tmp", Command: "foo"}},
		{name: "Doppelpunkte im Kommando", input: "0:echo a:b:c", want: Entry{Directory: "/tmp", Command: "echo a:b:c"}},
		{name: "mehrzeilig", input: "1:for i in 1 2\ndo echo $i\ndone", want: Entry{ExitCode: 1, Directory: "/tmp", Command: "for i in 1 2\ndo echo $i\ndone"}},
		{name: "umgebender Leerraum", input: "  2:make  \n", want: Entry{ExitCode: 2, Directory: "/tmp", Command: "make"}},
		{name: "kein Exit-Code", input: "ls -la", wantErr: true},
		{name: "negativer Exit-Code", input: "-1:ls", wantErr: true},
		{name: "Text vor dem Code", input: "x 1:ls", wantErr: true},
		{name: "leeres Kommando", input: "0:", want: Entry{Directory: "/tmp"}},
		{name: "leeres Kommando mit Leerraum", input: "3:   ", want: Entry{ExitCode: 3, Directory: "/tmp"}},
		{name: "leer", input: "", wantErr: true},
		{name: "Exit-Code zu gross", input: "99999999999999999999:ls", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.input, "/tmp")
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEntry) {
					t.Fatalf("Parse(%q) Fehler = %v, erwartet ErrInvalidEntry", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unerwarteter Fehler: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, erwartet %+v", tt.input, got, tt.want)
			}
		})
	}
}
