// Package state persists pipeline bookkeeping in a flat JSON file.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultPath is the store location relative to the project directory.
const DefaultPath = ".gauntlet/state.json"

// Store implements ports.SnapshotStore using a flat JSON file keyed by
// lockfile path.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.SnapshotInfo
}

// NewStore creates a new SnapshotStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.SnapshotInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read snapshot store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal snapshot store")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for snapshot store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write snapshot store")
	}

	return nil
}

// Get retrieves the record for a lockfile path.
func (s *Store) Get(lockfilePath string) (*domain.SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[lockfilePath]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the record.
func (s *Store) Put(info domain.SnapshotInfo) error {
	s.mu.Lock()
	s.cache[info.LockfilePath] = info
	s.mu.Unlock()

	return s.save()
}
