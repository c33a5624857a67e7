package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.gauntlet.dev/gauntlet/internal/adapters/state"
	"go.gauntlet.dev/gauntlet/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(path)
	require.NoError(t, err)

	info := domain.SnapshotInfo{
		LockfilePath:   "crate/Cargo.lock",
		ManifestDigest: "deadbeefdeadbeef",
		Generated:      true,
		Timestamp:      time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Put(info))

	got, err := store.Get("crate/Cargo.lock")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info, *got)
}

func TestStore_GetMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(path)
	require.NoError(t, err)

	got, err := store.Get("absent/Cargo.lock")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	first, err := state.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(domain.SnapshotInfo{
		LockfilePath:   "Cargo.lock",
		ManifestDigest: "0123456789abcdef",
	}))

	second, err := state.NewStore(path)
	require.NoError(t, err)

	got, err := second.Get("Cargo.lock")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0123456789abcdef", got.ManifestDigest)
}

func TestStore_OverwriteRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Put(domain.SnapshotInfo{LockfilePath: "Cargo.lock", ManifestDigest: "aaaa"}))
	require.NoError(t, store.Put(domain.SnapshotInfo{LockfilePath: "Cargo.lock", ManifestDigest: "bbbb"}))

	got, err := store.Get("Cargo.lock")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bbbb", got.ManifestDigest)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := state.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal snapshot store")
}
