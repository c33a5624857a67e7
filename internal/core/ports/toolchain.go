package ports

import (
	"context"

	"go.gauntlet.dev/gauntlet/internal/core/domain"
)

// ToolchainInstaller installs exactly one toolchain variant. This is the
// axis of matrix variation; each pipeline run installs only its own entry.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainInstaller interface {
	Install(ctx context.Context, tc domain.Toolchain) error
}
