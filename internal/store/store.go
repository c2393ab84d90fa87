// Package store persists a SQLite index of generated result documents,
// so the harness can list past runs and regenerate documents without
// duplicating index rows.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// schemaSQL is applied on open; every statement is idempotent.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
	filename       TEXT PRIMARY KEY,
	run_id         TEXT NOT NULL,
	tool           TEXT NOT NULL,
	model          TEXT NOT NULL,
	api_style      TEXT NOT NULL,
	run_number     INTEGER NOT NULL,
	schema_version TEXT NOT NULL,
	valid          INTEGER NOT NULL,
	violations     INTEGER NOT NULL,
	created_at     TEXT NOT NULL,
	updated_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_run_id ON runs(run_id);
`

// Entry is one indexed result document.
type Entry struct {
	Filename      string
	RunID         string
	Tool          string
	Model         string
	APIStyle      string
	RunNumber     int
	SchemaVersion string
	Valid         bool
	Violations    int
	CreatedAt     string
	UpdatedAt     string
}

// Store wraps the SQLite run index.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the index database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create index directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open run index: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize run index schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record upserts an entry keyed on filename. Regenerating a result
// document for the same artifact updates the row in place.
func (s *Store) Record(ctx context.Context, e Entry) error {
	now := s.now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
INSERT INTO runs(filename, run_id, tool, model, api_style, run_number, schema_version, valid, violations, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(filename) DO UPDATE SET
	run_id = excluded.run_id,
	tool = excluded.tool,
	model = excluded.model,
	api_style = excluded.api_style,
	run_number = excluded.run_number,
	schema_version = excluded.schema_version,
	valid = excluded.valid,
	violations = excluded.violations,
	updated_at = excluded.updated_at`,
		e.Filename, e.RunID, e.Tool, e.Model, e.APIStyle, e.RunNumber,
		e.SchemaVersion, boolInt(e.Valid), e.Violations, now, now)
	if err != nil {
		return fmt.Errorf("record run %s: %w", e.Filename, err)
	}
	return nil
}

// List returns the most recently updated entries, newest first. A
// non-positive limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `
SELECT filename, run_id, tool, model, api_style, run_number, schema_version, valid, violations, created_at, updated_at
FROM runs ORDER BY updated_at DESC, filename DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var valid int
		if err := rows.Scan(&e.Filename, &e.RunID, &e.Tool, &e.Model, &e.APIStyle,
			&e.RunNumber, &e.SchemaVersion, &valid, &e.Violations, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		e.Valid = valid != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
