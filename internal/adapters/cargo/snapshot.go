package cargo

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.gauntlet.dev/gauntlet/internal/core/ports"
	"go.trai.ch/zerr"
)

// SnapshotManager implements ports.SnapshotManager for Cargo.lock.
type SnapshotManager struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewSnapshotManager creates a new SnapshotManager.
func NewSnapshotManager(executor ports.Executor, logger ports.Logger) *SnapshotManager {
	return &SnapshotManager{
		executor: executor,
		logger:   logger,
	}
}

// Ensure generates the lockfile if and only if it is absent. An existing
// snapshot is never overwritten: it is the authoritative input for the rest
// of the run, and repeated runs against the same commit must observe
// identical content.
func (m *SnapshotManager) Ensure(ctx context.Context, projectDir, lockfilePath string) (bool, error) {
	_, err := os.Stat(lockfilePath)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, zerr.With(zerr.Wrap(err, "failed to stat snapshot"), "lockfile", lockfilePath)
	}

	m.logger.Info("dependency snapshot absent, generating " + lockfilePath)
	if err := m.executor.Execute(ctx, generateLockfileCommand(projectDir), io.Discard, io.Discard); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to generate dependency snapshot"), "lockfile", lockfilePath)
	}
	return true, nil
}

var _ ports.SnapshotManager = (*SnapshotManager)(nil)
