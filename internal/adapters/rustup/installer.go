// Package rustup installs Rust toolchain variants via the rustup CLI.
package rustup

import (
	"context"
	"io"

	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.gauntlet.dev/gauntlet/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.ToolchainInstaller.
type Installer struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewInstaller creates a new rustup Installer.
func NewInstaller(executor ports.Executor, logger ports.Logger) *Installer {
	return &Installer{
		executor: executor,
		logger:   logger,
	}
}

// Install installs exactly the given toolchain variant and makes it the
// default for the run. rustup is itself idempotent for already-installed
// toolchains.
func (i *Installer) Install(ctx context.Context, tc domain.Toolchain) error {
	i.logger.Info("installing toolchain " + tc.String())

	install := &domain.Command{
		Name: "rustup toolchain install",
		Argv: []string{"rustup", "toolchain", "install", tc.String(), "--profile", "minimal", "--component", "clippy"},
	}
	if err := i.executor.Execute(ctx, install, io.Discard, io.Discard); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to install toolchain"), "toolchain", tc.String())
	}

	setDefault := &domain.Command{
		Name: "rustup default",
		Argv: []string{"rustup", "default", tc.String()},
	}
	if err := i.executor.Execute(ctx, setDefault, io.Discard, io.Discard); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to select toolchain"), "toolchain", tc.String())
	}

	return nil
}

var _ ports.ToolchainInstaller = (*Installer)(nil)
