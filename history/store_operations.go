// Modul: store_operations.go
// Beschreibung: Oeffentliche Operationen des History-Index.
// Enthaelt Add, Search und Recent.

package history

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Add speichert einen neuen Eintrag mit Zeitstempel now
func (s *Store) Add(ctx context.Context, e Entry, now time.Time) (Record, error) {
	if err := s.ensureDB(); err != nil {
		return Record{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Record{}, fmt.Errorf("generate id: %w", err)
	}

	r := Record{
		ID:        id.String(),
		CreatedMS: now.UnixMilli(),
		ExitCode:  e.ExitCode,
		Directory: e.Directory,
		Command:   e.Command,
	}

	if err := s.db.insertRecord(ctx, r); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return r, nil
}

// Search liefert hoechstens q.Limit Treffer (MaxCandidates wenn <= 0),
// absteigend nach Score. Gleiche Kommandos erscheinen nur einmal.
// Bewertet werden nur die neuesten ScanLimit Kandidaten.
func (s *Store) Search(ctx context.Context, q Query) ([]Match, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 || limit > MaxCandidates {
		limit = MaxCandidates
	}
	if q.Now.IsZero() {
		q.Now = time.Now()
	}

	pattern, err := NewPattern(q.Text)
	if err != nil {
		return nil, err
	}

	scan := s.ScanLimit
	if scan <= 0 {
		scan = DefaultScanLimit
	}

	records, err := s.db.candidateRecords(ctx, pattern.Tokens(), scan)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	best := make(map[string]int)
	var matches []Match
	for _, r := range records {
		ok, err := pattern.Match(r.Command)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		m := score(r, q.Text, q.Directory, q.Now)
		if i, seen := best[r.Command]; seen {
			if m.Score > matches[i].Score {
				matches[i] = m
			}
			continue
		}
		best[r.Command] = len(matches)
		matches = append(matches, m)
	}

	slices.SortStableFunc(matches, compareMatches)

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// compareMatches: hoeherer Score zuerst, bei Gleichstand der neuere Eintrag
func compareMatches(a, b Match) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(b.CreatedMS, a.CreatedMS); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

// Recent liefert die letzten limit Eintraege, neueste zuerst
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}

	records, err := s.db.recentRecords(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return records, nil
}
