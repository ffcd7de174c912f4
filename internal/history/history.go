// Package history keeps a log of copied color values in sqlite.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one value placed on the clipboard.
type Entry struct {
	ID       string    `json:"id"`
	Color    string    `json:"color"`
	Name     string    `json:"name,omitempty"`
	Label    string    `json:"label"`
	Value    string    `json:"value"`
	CopiedAt time.Time `json:"copied_at"`
}

// Add stores e, filling in its ID and timestamp when unset.
func Add(e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CopiedAt.IsZero() {
		e.CopiedAt = time.Now()
	}

	err := withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO copies (id, color, name, label, value, copied_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				color=excluded.color,
				name=excluded.name,
				label=excluded.label,
				value=excluded.value,
				copied_at=excluded.copied_at
		`, e.ID, e.Color, e.Name, e.Label, e.Value, e.CopiedAt.UnixMilli())
		if err != nil {
			return fmt.Errorf("failed to insert copy: %w", err)
		}
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Recent returns up to limit entries, newest first. A limit of zero or less
// returns everything.
func Recent(limit int) ([]Entry, error) {
	conn, err := getDBHelper()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := conn.Query(`
		SELECT id, color, name, label, value, copied_at
		FROM copies
		ORDER BY copied_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ms int64
		if err := rows.Scan(&e.ID, &e.Color, &e.Name, &e.Label, &e.Value, &ms); err != nil {
			return nil, err
		}
		e.CopiedAt = time.UnixMilli(ms)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes every entry and returns how many were removed.
func Clear() (int64, error) {
	var n int64
	err := withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM copies")
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		n, _ = res.RowsAffected()
		return nil
	})
	return n, err
}
