package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"feedwatch/internal/migrations"
)

// BuildDSN returns the connection string for path with all required pragmas
// embedded. Pragmas applied via Exec only reach the one pooled connection
// that ran them, so they must travel in the DSN to cover every connection.
// _txlock=immediate makes write transactions take the write lock at BEGIN
// rather than on first write, avoiding lock upgrades mid-transaction.
func BuildDSN(path string) string {
	q := url.Values{}
	q.Add("_txlock", "immediate")
	for _, pragma := range []string{
		"journal_mode(WAL)",
		"foreign_keys(ON)",
		"busy_timeout(30000)",
		"synchronous(NORMAL)",
	} {
		q.Add("_pragma", pragma)
	}
	return "file:" + path + "?" + q.Encode()
}

// Open opens the SQLite database at path, creating its directory if needed,
// and brings the schema up to date.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", BuildDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies pending schema migrations.
func Migrate(db *sql.DB) error {
	return migrations.Run(db)
}
