package ports

import "context"

// SnapshotManager ensures a resolved dependency snapshot exists.
//
// Ensure is conditional, never an unconditional regeneration: an existing
// snapshot is left byte-for-byte untouched so repeated runs against the same
// commit stay reproducible.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type SnapshotManager interface {
	// Ensure generates the snapshot if and only if lockfilePath is absent.
	// It reports whether this call generated it.
	Ensure(ctx context.Context, projectDir, lockfilePath string) (generated bool, err error)
}
