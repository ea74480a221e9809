// Package storage persists job applications in a single-file SQLite
// database. The store owns the on-disk representation; callers resolve
// the path once (see internal/config) and pass it to Open.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB

	// now is the clock used for created_at/updated_at. Tests override it.
	now func() time.Time
}

// timeFormat is the column format for created_at and updated_at.
// RFC 3339 UTC sorts lexicographically, so recency cutoffs can be
// compared in SQL on the text column.
const timeFormat = time.RFC3339

// Open opens or creates a SQLite database at the given path, creating
// the parent directory if needed. Opening an existing database leaves
// its data untouched. All failures wrap ErrStorage.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: creating %s: %v", ErrStorage, dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", ErrStorage, err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: creating schema: %v", ErrStorage, err)
	}

	return &DB{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS applications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			company TEXT NOT NULL,
			role TEXT NOT NULL,
			source TEXT,
			status TEXT NOT NULL,
			notes TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_applications_status ON applications(status);
	`

	_, err := db.Exec(schema)
	return err
}
