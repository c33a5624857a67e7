package pipeline_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.gauntlet.dev/gauntlet/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

func TestRunMatrix_AllEntriesRun(t *testing.T) {
	var (
		mu  sync.Mutex
		ran []domain.Toolchain
	)

	m := domain.Matrix{Toolchains: []domain.Toolchain{"stable", "nightly", "1.79.0"}}
	err := pipeline.RunMatrix(context.Background(), m, func(_ context.Context, tc domain.Toolchain) error {
		mu.Lock()
		ran = append(ran, tc)
		mu.Unlock()
		return nil
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Toolchain{"stable", "nightly", "1.79.0"}, ran)
}

// One entry's failure must not prevent its siblings from running to
// completion, and the verdict must carry every failure.
func TestRunMatrix_EntryIsolation(t *testing.T) {
	var (
		mu  sync.Mutex
		ran []domain.Toolchain
	)
	nightlyErr := zerr.New("test failed on nightly")

	m := domain.Matrix{Toolchains: []domain.Toolchain{"stable", "nightly", "beta"}}
	err := pipeline.RunMatrix(context.Background(), m, func(_ context.Context, tc domain.Toolchain) error {
		mu.Lock()
		ran = append(ran, tc)
		mu.Unlock()
		if tc == "nightly" {
			return nightlyErr
		}
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, nightlyErr)
	assert.ElementsMatch(t, []domain.Toolchain{"stable", "nightly", "beta"}, ran,
		"a failing entry must not cancel its siblings")
}

func TestRunMatrix_JoinsAllFailures(t *testing.T) {
	errStable := zerr.New("stable failed")
	errNightly := zerr.New("nightly failed")

	m := domain.Matrix{Toolchains: []domain.Toolchain{"stable", "nightly"}}
	err := pipeline.RunMatrix(context.Background(), m, func(_ context.Context, tc domain.Toolchain) error {
		if tc == "stable" {
			return errStable
		}
		return errNightly
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errStable)
	assert.ErrorIs(t, err, errNightly)
}

func TestRunMatrix_InvalidMatrix(t *testing.T) {
	called := false

	err := pipeline.RunMatrix(context.Background(), domain.Matrix{}, func(_ context.Context, _ domain.Toolchain) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyMatrix)
	assert.False(t, called)

	dup := domain.Matrix{Toolchains: []domain.Toolchain{"stable", "stable"}}
	err = pipeline.RunMatrix(context.Background(), dup, func(_ context.Context, _ domain.Toolchain) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateMatrixEntry)
	assert.False(t, called)
}
