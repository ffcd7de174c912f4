package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/shade-palette/shade/internal/config"
	"github.com/shade-palette/shade/internal/utils"
)

var (
	db     *sql.DB
	dbMu   sync.Mutex
	dbPath string
)

const schema = `
CREATE TABLE IF NOT EXISTS copies (
	id        TEXT PRIMARY KEY,
	color     TEXT NOT NULL,
	name      TEXT NOT NULL DEFAULT '',
	label     TEXT NOT NULL,
	value     TEXT NOT NULL,
	copied_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_copies_copied_at ON copies(copied_at);
`

// Configure sets the database file used by the package. An open database is
// closed so the next call reopens at the new location. An empty path
// restores the default under the config directory.
func Configure(path string) {
	dbMu.Lock()
	defer dbMu.Unlock()
	closeLocked()
	dbPath = path
}

// CloseDB closes the database if it is open.
func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()
	closeLocked()
}

func initDB() error {
	dbMu.Lock()
	defer dbMu.Unlock()
	return openLocked()
}

func openLocked() error {
	if db != nil {
		return nil
	}

	path := dbPath
	if path == "" {
		path = config.GetHistoryPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	// One writer keeps sqlite from reporting SQLITE_BUSY between the CLI and the TUI.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to configure history database: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create history schema: %w", err)
	}

	utils.Debug("history database opened at %s", path)
	db = conn
	return nil
}

func closeLocked() {
	if db != nil {
		db.Close()
		db = nil
	}
}

func getDBHelper() (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()
	if err := openLocked(); err != nil {
		utils.Debug("history: %v", err)
		return nil, err
	}
	return db, nil
}

func withTx(fn func(*sql.Tx) error) error {
	conn, err := getDBHelper()
	if err != nil {
		return err
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
