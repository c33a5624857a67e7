package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.gauntlet.dev/gauntlet/internal/adapters/git"
	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.gauntlet.dev/gauntlet/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// seedRepo creates a local repository with a single commit on master so it
// can serve as a clone source over the file protocol.
func seedRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"demo\"\n"), 0o600))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("Cargo.toml")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com"},
	})
	require.NoError(t, err)

	return dir
}

func TestFetcher_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	remote := seedRepo(t)
	dest := filepath.Join(t.TempDir(), "checkout")

	fetcher := git.NewFetcher(mockLogger)
	err := fetcher.Fetch(context.Background(), domain.SourceConfig{Remote: remote}, dest)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dest, "Cargo.toml"))
	assert.True(t, fetcher.IsCheckout(dest))
}

func TestFetcher_Fetch_BadRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	fetcher := git.NewFetcher(mockLogger)
	err := fetcher.Fetch(context.Background(), domain.SourceConfig{
		Remote: filepath.Join(t.TempDir(), "nowhere"),
	}, filepath.Join(t.TempDir(), "checkout"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch source")
}

func TestFetcher_IsCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	fetcher := git.NewFetcher(mockLogger)

	assert.False(t, fetcher.IsCheckout(t.TempDir()))
	assert.True(t, fetcher.IsCheckout(seedRepo(t)))
}
