// database_commands.go - Datenbank-Operationen fuer Kommando-Eintraege
// Enthält: insertRecord, candidateRecords, recentRecords, scanRecords

package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const recordColumns = "id, created_ms, times_selected, exit_code, directory, command"

func (db *database) insertRecord(ctx context.Context, r Record) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO commands (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.ID, r.CreatedMS, r.TimesSelected, r.ExitCode, r.Directory, r.Command)
	if err != nil {
		return fmt.Errorf("insert command: %w", err)
	}
	return nil
}

// candidateRecords liefert Eintraege, die jedes Token als Teilstring
// enthalten, neueste zuerst. Pro Kommando und Verzeichnis kommt nur der
// neueste Eintrag zurueck, insgesamt hoechstens limit Zeilen.
// Die Reihenfolge der Tokens prueft der Aufrufer.
func (db *database) candidateRecords(ctx context.Context, tokens []string, limit int) ([]Record, error) {
	var where []string
	args := make([]any, 0, len(tokens)+1)
	for _, tok := range tokens {
		where = append(where, "instr(command, ?) > 0")
		args = append(args, tok)
	}

	inner := "SELECT " + recordColumns + `,
		ROW_NUMBER() OVER (PARTITION BY command, directory ORDER BY created_ms DESC, id DESC) AS rn
		FROM commands`
	if len(where) > 0 {
		inner += " WHERE " + strings.Join(where, " AND ")
	}
	query := "SELECT " + recordColumns + " FROM (" + inner + `)
		WHERE rn = 1
		ORDER BY created_ms DESC, id DESC
		LIMIT ?`
	args = append(args, limit)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query commands: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (db *database) recentRecords(ctx context.Context, limit int) ([]Record, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM commands
		ORDER BY created_ms DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent commands: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.CreatedMS, &r.TimesSelected, &r.ExitCode, &r.Directory, &r.Command); err != nil {
			return nil, fmt.Errorf("scan command: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commands: %w", err)
	}
	return records, nil
}
