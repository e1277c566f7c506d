// config_file.go - Optionale Konfigurationsdatei
//
// Dieses Modul enthaelt:
// - File: Inhalt von config.yaml im Index-Verzeichnis
// - LoadFile: Liest die Datei, fehlende Datei ist kein Fehler
// - Settings/Load: Fuehrt Datei und Environment zusammen (Environment gewinnt)
package envconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName ist der Name der Konfigurationsdatei im Index-Verzeichnis
const FileName = "config.yaml"

// File spiegelt config.yaml. Nicht gesetzte Felder bleiben nil bzw. leer.
type File struct {
	Theme       string `yaml:"theme"`
	Prompt      string `yaml:"prompt"`
	Color       string `yaml:"color"`
	MaxRows     *uint  `yaml:"max_rows"`
	NoHighlight *bool  `yaml:"no_highlight"`
}

// LoadFile liest dir/config.yaml
func LoadFile(dir string) (File, error) {
	var f File

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	} else if err != nil {
		return f, err
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Settings ist die aufgeloeste Konfiguration einer Sitzung
type Settings struct {
	Dir         string
	Theme       string
	Prompt      string
	Color       string
	MaxRows     uint
	NoHighlight bool
}

// Load loest Environment und config.yaml auf. Environment-Variablen
// ueberschreiben Werte aus der Datei.
func Load() (Settings, error) {
	s := Settings{Dir: HistoryDir()}

	f, err := LoadFile(s.Dir)
	if err != nil {
		return s, err
	}

	s.Theme = f.Theme
	s.Prompt = f.Prompt
	s.Color = f.Color
	if f.MaxRows != nil {
		s.MaxRows = *f.MaxRows
	}
	if f.NoHighlight != nil {
		s.NoHighlight = *f.NoHighlight
	}

	if v := Theme(); v != "" {
		s.Theme = v
	}
	if v := Prompt(); v != "" {
		s.Prompt = v
	}
	if v := Color(); v != "" {
		s.Color = v
	}
	if Var("FUZZY_HISTORY_MAX_ROWS") != "" {
		s.MaxRows = MaxRows()
	}
	if Var("FUZZY_HISTORY_NO_HIGHLIGHT") != "" {
		s.NoHighlight = NoHighlight()
	}

	return s, nil
}
