package ports

import "go.gauntlet.dev/gauntlet/internal/core/domain"

// SnapshotStore persists snapshot bookkeeping across runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the record for a lockfile path.
	// Returns nil, nil if not found.
	Get(lockfilePath string) (*domain.SnapshotInfo, error)

	// Put stores the record.
	Put(info domain.SnapshotInfo) error
}
