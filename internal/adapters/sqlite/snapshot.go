package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"roadmapio/internal/domain"
	"roadmapio/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// snapshotKey is the application-scoped key the whole tree is stored under
const snapshotKey = "roadmapio"

// SnapshotStore implements ports.SnapshotStore using SQLite. The entire
// tree is one JSON blob in a single row, rewritten wholesale on every
// mutation.
type SnapshotStore struct {
	db     *sql.DB
	dbPath string
}

// Ensure SnapshotStore implements the port
var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates an unopened snapshot store
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Open creates a snapshot store and initializes its database at dbPath
func Open(dbPath string) (*SnapshotStore, error) {
	s := NewSnapshotStore()
	if err := s.Open(dbPath); err != nil {
		return nil, err
	}
	return s, nil
}

// Open initializes the database at dbPath, creating parent directories as
// needed.
func (s *SnapshotStore) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Pragmas + schema in a single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *SnapshotStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the persisted snapshot, or nil when none exists yet
func (s *SnapshotStore) Load() (*domain.Snapshot, error) {
	var value string
	err := s.db.QueryRow(
		`SELECT value FROM snapshots WHERE key = ?`, snapshotKey,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save rewrites the persisted snapshot
func (s *SnapshotStore) Save(snap *domain.Snapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)`,
		snapshotKey, string(value), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
