// Package persistence provides the SQLite travel log. The novel text
// file is the artifact; the log keeps runs queryable after the fact.
package persistence

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection for the travel log.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a travel log database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		walker TEXT NOT NULL,
		start_place TEXT NOT NULL,
		end_place TEXT NOT NULL,
		total_miles REAL NOT NULL,
		started_at TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		days INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS entries (
		run_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		location TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		miles REAL NOT NULL,
		remaining REAL NOT NULL,
		rest INTEGER NOT NULL,
		entry TEXT NOT NULL,
		PRIMARY KEY (run_id, day)
	);

	CREATE TABLE IF NOT EXISTS walk_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_run ON entries(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Run is one generation run of the novel.
type Run struct {
	ID         string  `db:"id"`
	Walker     string  `db:"walker"`
	StartPlace string  `db:"start_place"`
	EndPlace   string  `db:"end_place"`
	TotalMiles float64 `db:"total_miles"`
	StartedAt  string  `db:"started_at"`
	Completed  bool    `db:"completed"`
	Days       int     `db:"days"`
}

// Entry is one simulated day within a run.
type Entry struct {
	RunID     string  `db:"run_id"`
	Day       int     `db:"day"`
	Location  string  `db:"location"`
	Lat       float64 `db:"lat"`
	Lon       float64 `db:"lon"`
	Miles     float64 `db:"miles"`
	Remaining float64 `db:"remaining"`
	Rest      bool    `db:"rest"`
	Text      string  `db:"entry"`
}

// CreateRun records the start of a run.
func (db *DB) CreateRun(r Run) error {
	if r.StartedAt == "" {
		r.StartedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := db.conn.Exec(
		`INSERT INTO runs (id, walker, start_place, end_place, total_miles, started_at, completed, days)
		 VALUES (?, ?, ?, ?, ?, ?, 0, 0)`,
		r.ID, r.Walker, r.StartPlace, r.EndPlace, r.TotalMiles, r.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", r.ID, err)
	}
	return nil
}

// RecordEntry appends one day to a run's log.
func (db *DB) RecordEntry(e Entry) error {
	rest := 0
	if e.Rest {
		rest = 1
	}
	_, err := db.conn.Exec(
		`INSERT INTO entries (run_id, day, location, lat, lon, miles, remaining, rest, entry)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Day, e.Location, e.Lat, e.Lon, e.Miles, e.Remaining, rest, e.Text,
	)
	if err != nil {
		return fmt.Errorf("insert entry day %d: %w", e.Day, err)
	}
	return nil
}

// CompleteRun marks a run finished with its final day count.
func (db *DB) CompleteRun(runID string, days int) error {
	_, err := db.conn.Exec(
		"UPDATE runs SET completed = 1, days = ? WHERE id = ?",
		days, runID,
	)
	if err != nil {
		return fmt.Errorf("complete run %s: %w", runID, err)
	}
	return nil
}

// GetRun loads a run by ID.
func (db *DB) GetRun(runID string) (Run, error) {
	var r Run
	err := db.conn.Get(&r, "SELECT * FROM runs WHERE id = ?", runID)
	return r, err
}

// LoadEntries returns a run's day log in day order.
func (db *DB) LoadEntries(runID string) ([]Entry, error) {
	var entries []Entry
	err := db.conn.Select(&entries,
		"SELECT * FROM entries WHERE run_id = ? ORDER BY day", runID)
	return entries, err
}

// SetMeta stores a key-value pair.
func (db *DB) SetMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO walk_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM walk_meta WHERE key = ?", key)
	return value, err
}
