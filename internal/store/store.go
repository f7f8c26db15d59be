// Package store is the persistence adapter: named state slices serialized as
// JSON documents inside a single SQLite key-value table. A slice that is
// missing or fails to parse silently falls back to its caller-supplied
// default; storage trouble never surfaces as a user-visible error.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Persisted slice keys
const (
	KeyUsers      = "kerja_users"
	KeyTasks      = "kerja_tasks"
	KeyEvents     = "kerja_events"
	KeyEventTypes = "kerja_event_types"
	KeyActivities = "kerja_activities"
	KeySession    = "kerja_session"
)

// DB wraps the SQLite connection holding the workspace state
type DB struct {
	*sql.DB
}

// DefaultPath returns the default database path (~/.kerja/workspace.db)
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".kerja", "workspace.db"), nil
}

// Open opens or creates the state database
func Open(path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := sqlDB.Exec(migrationCreateSlices); err != nil {
		return nil, fmt.Errorf("failed to run migration: %w", err)
	}

	return &DB{DB: sqlDB}, nil
}

// OpenDefault opens the database at the default path
func OpenDefault() (*DB, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

const migrationCreateSlices = `
CREATE TABLE IF NOT EXISTS slices (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Load deserializes the slice stored under key into out. When the key is
// absent or the stored document does not parse, out is left untouched so the
// caller's preloaded default survives.
func (db *DB) Load(key string, out any) {
	var raw string
	err := db.QueryRow(`SELECT value FROM slices WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		return
	}
	_ = json.Unmarshal([]byte(raw), out)
}

// Save serializes v and stores it under key, replacing any previous value
func (db *DB) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	_, err = db.Exec(
		`INSERT INTO slices (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// LoadString returns the raw string stored under key, or ok=false when absent
func (db *DB) LoadString(key string) (string, bool) {
	var raw string
	if err := db.QueryRow(`SELECT value FROM slices WHERE key = ?`, key).Scan(&raw); err != nil {
		return "", false
	}
	return raw, true
}

// SaveString stores a raw string under key
func (db *DB) SaveString(key, value string) error {
	_, err := db.Exec(
		`INSERT INTO slices (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Delete removes the slice stored under key; deleting a missing key is fine
func (db *DB) Delete(key string) error {
	if _, err := db.Exec(`DELETE FROM slices WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
