package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.gauntlet.dev/gauntlet/internal/adapters/shell"
	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.gauntlet.dev/gauntlet/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	executor := shell.NewExecutor(mockLogger)
	tmpDir := t.TempDir()

	cmd := &domain.Command{
		Name: "multi-line",
		Argv: []string{"sh", "-c", "echo line1; echo line2"},
		Dir:  tmpDir,
	}

	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_StreamsStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	var stdout bytes.Buffer
	cmd := &domain.Command{
		Name: "stream",
		Argv: []string{"sh", "-c", "echo captured"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "captured\n", stdout.String())
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("value-123").Times(1)

	executor := shell.NewExecutor(mockLogger)

	cmd := &domain.Command{
		Name: "env",
		Argv: []string{"sh", "-c", "echo $GAUNTLET_TEST_VAR"},
		Env:  []string{"GAUNTLET_TEST_VAR=value-123"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)
	require.NoError(t, err)
}

// The exit status of a failed command must come back verbatim through the
// returned ExitError.
func TestExecutor_Execute_ExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	cmd := &domain.Command{
		Name: "failing",
		Argv: []string{"sh", "-c", "exit 42"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)
	require.Error(t, err)

	var exitErr *domain.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 42, exitErr.Code)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), &domain.Command{Name: "empty"}, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_PathPrepended(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	// A PATH entry in the command environment must be layered in front of
	// the inherited PATH, not replace it: sh still resolves from the system.
	var stdout bytes.Buffer
	cmd := &domain.Command{
		Name: "path",
		Argv: []string{"sh", "-c", "echo $PATH"},
		Env:  []string{"PATH=/opt/provisioned/bin"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte("/opt/provisioned/bin:")),
		"expected provisioned PATH entry first, got %q", stdout.String())
}
