// Modul: store_core.go
// Beschreibung: Store-Kernfunktionen und Datenbank-Initialisierung.
// Enthaelt Store, ensureDB, Close und den Standard-Datenbankpfad.

package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DBFileName ist der Dateiname des Index im History-Verzeichnis
const DBFileName = "history.db"

// DefaultScanLimit begrenzt die Kandidaten, die eine Suche bewertet
const DefaultScanLimit = 5000

type Store struct {
	// DBPath ist der Pfad zur SQLite-Datei
	DBPath string

	// ScanLimit ist die Hoechstzahl der Kandidaten pro Suche,
	// DefaultScanLimit wenn <= 0
	ScanLimit int

	// dbMu schuetzt nur die Initialisierung der Datenbank
	dbMu sync.Mutex
	db   *database
}

// NewStore erstellt einen Store fuer das History-Verzeichnis dir.
// Die Datenbank wird erst beim ersten Zugriff geoeffnet.
func NewStore(dir string) *Store {
	return &Store{DBPath: filepath.Join(dir, DBFileName)}
}

func (s *Store) ensureDB() error {
	if s.db != nil {
		return nil
	}

	s.dbMu.Lock()
	defer s.dbMu.Unlock()

	if s.db != nil {
		return nil
	}

	if s.DBPath == "" {
		return fmt.Errorf("%w: no database path configured", ErrStorageUnavailable)
	}

	if err := os.MkdirAll(filepath.Dir(s.DBPath), 0o755); err != nil {
		return fmt.Errorf("%w: create db directory: %w", ErrStorageUnavailable, err)
	}

	database, err := newDatabase(s.DBPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	s.db = database
	return nil
}

// Close schliesst die Datenbank, falls sie geoeffnet wurde
func (s *Store) Close() error {
	s.dbMu.Lock()
	defer s.dbMu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
