// Package catalog provides an optional SQLite index of generated
// structure files, so repeated generation runs stay auditable: which
// run wrote which file, of what kind, at which origin.
package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Catalog is a SQLite-backed index of generation runs.
type Catalog struct {
	db *sql.DB
}

// Entry is one recorded structure file.
type Entry struct {
	RunID     string `json:"run_id"`
	Kind      string `json:"kind"`
	Origin    string `json:"origin"`
	Path      string `json:"path"`
	CreatedAt string `json:"created_at"`
}

// Open creates or opens a catalog database at the given path.
// Idempotent: the schema is applied with IF NOT EXISTS.
//
// The database is configured with WAL mode for concurrent reads, a
// busy timeout for lock contention, and a single-writer connection
// pool, since SQLite supports only one writer at a time.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Catalog{db: db}, nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Record inserts one entry. CreatedAt is assigned by the database.
func (c *Catalog) Record(ctx context.Context, e Entry) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO generations (run_id, kind, origin, path)
		VALUES (?, ?, ?, ?)
	`, e.RunID, e.Kind, e.Origin, e.Path)
	if err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// List returns all entries in insertion order.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT run_id, kind, origin, path, created_at
		FROM generations
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RunID, &e.Kind, &e.Origin, &e.Path, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generation row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generation rows: %w", err)
	}
	return entries, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}
