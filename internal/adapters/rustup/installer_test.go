package rustup_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.gauntlet.dev/gauntlet/internal/adapters/rustup"
	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.gauntlet.dev/gauntlet/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestInstaller_Install(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	gomock.InOrder(
		mockExecutor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd *domain.Command, _, _ io.Writer) error {
				assert.Equal(t, []string{
					"rustup", "toolchain", "install", "nightly",
					"--profile", "minimal", "--component", "clippy",
				}, cmd.Argv)
				return nil
			}),
		mockExecutor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd *domain.Command, _, _ io.Writer) error {
				assert.Equal(t, []string{"rustup", "default", "nightly"}, cmd.Argv)
				return nil
			}),
	)

	installer := rustup.NewInstaller(mockExecutor, mockLogger)
	require.NoError(t, installer.Install(context.Background(), "nightly"))
}

func TestInstaller_Install_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(zerr.New("no such toolchain")).
		Times(1)

	installer := rustup.NewInstaller(mockExecutor, mockLogger)
	err := installer.Install(context.Background(), "1.0.0")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to install toolchain")
}
