package ports

import "roadmapio/internal/domain"

// SnapshotStore persists the whole tree store as a single document under an
// application-scoped key. There is no partial or incremental persistence:
// the snapshot is loaded wholesale at startup and rewritten wholesale on
// every mutation.
type SnapshotStore interface {
	// Load returns the persisted snapshot, or nil when none exists yet
	Load() (*domain.Snapshot, error)

	// Save rewrites the persisted snapshot
	Save(snap *domain.Snapshot) error

	// Close releases underlying resources
	Close() error
}
