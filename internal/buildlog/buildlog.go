// Package buildlog records a row per pattern-database build run to a
// local SQLite database: which phase, how many entries it produced,
// how long it took, and a run ID to correlate with logs.
package buildlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DB wraps the build-log SQLite connection.
type DB struct {
	*sql.DB
}

// DefaultPath returns the default build-log location under the
// user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("buildlog: home directory: %w", err)
	}
	dir := filepath.Join(home, ".thistle-cube")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("buildlog: create %s: %w", dir, err)
	}
	return filepath.Join(dir, "buildlog.db"), nil
}

// Open opens (creating if absent) the build log at path and ensures
// its schema exists.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("buildlog: create %s: %w", dir, err)
		}
	}
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("buildlog: open %s: %w", path, err)
	}
	if _, err := sqldb.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("buildlog: enable WAL: %w", err)
	}
	db := &DB{DB: sqldb}
	if err := db.migrate(); err != nil {
		sqldb.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) migrate() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS builds (
			run_id       TEXT PRIMARY KEY,
			phase        TEXT NOT NULL,
			key_bits     INTEGER NOT NULL,
			entry_count  INTEGER NOT NULL,
			duration_ms  INTEGER NOT NULL,
			started_at   TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("buildlog: migrate: %w", err)
	}
	return nil
}

// Run is one recorded pattern-database build.
type Run struct {
	RunID      string
	Phase      string
	KeyBits    int
	EntryCount int
	Duration   time.Duration
	StartedAt  time.Time
}

// Record inserts a completed build run, generating its run ID.
func (db *DB) Record(phase string, keyBits, entryCount int, dur time.Duration, startedAt time.Time) (string, error) {
	id := uuid.New().String()
	_, err := db.Exec(`
		INSERT INTO builds (run_id, phase, key_bits, entry_count, duration_ms, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, phase, keyBits, entryCount, dur.Milliseconds(), startedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("buildlog: record %s: %w", phase, err)
	}
	return id, nil
}

// Recent returns the n most recently started runs, newest first.
func (db *DB) Recent(n int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, phase, key_bits, entry_count, duration_ms, started_at
		FROM builds ORDER BY started_at DESC LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("buildlog: query recent: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var durMs int64
		var startedAt string
		if err := rows.Scan(&r.RunID, &r.Phase, &r.KeyBits, &r.EntryCount, &durMs, &startedAt); err != nil {
			return nil, fmt.Errorf("buildlog: scan run: %w", err)
		}
		r.Duration = time.Duration(durMs) * time.Millisecond
		ts, err := time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("buildlog: parse timestamp %q: %w", startedAt, err)
		}
		r.StartedAt = ts
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("buildlog: iterate runs: %w", err)
	}
	return out, nil
}
