// Package logutil richtet das strukturierte Logging ein.
//
// stderr gehoert dem Selector, deshalb schreibt fzh seine Logs in eine
// Datei im Index-Verzeichnis.
package logutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName ist der Name der Log-Datei im Index-Verzeichnis
const FileName = "fzh.log"

// NewLogger erstellt einen Text-Logger mit kurzen Quelldateinamen
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}

// Setup oeffnet dir/fzh.log und setzt den Default-Logger.
// Der Aufrufer schliesst die Datei am Ende.
func Setup(dir string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(dir, FileName), os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}

	slog.SetDefault(NewLogger(logFile, level))
	return logFile, nil
}
