//go:build wireinject

package app

import (
	"github.com/mazrean/kessoku"
	"go.gauntlet.dev/gauntlet/internal/adapters/cargo"
	"go.gauntlet.dev/gauntlet/internal/adapters/conda"
	"go.gauntlet.dev/gauntlet/internal/adapters/config"
	"go.gauntlet.dev/gauntlet/internal/adapters/fs"
	"go.gauntlet.dev/gauntlet/internal/adapters/git"
	"go.gauntlet.dev/gauntlet/internal/adapters/logger"
	"go.gauntlet.dev/gauntlet/internal/adapters/rustup"
	"go.gauntlet.dev/gauntlet/internal/adapters/shell"
	"go.gauntlet.dev/gauntlet/internal/adapters/state"
	"go.gauntlet.dev/gauntlet/internal/adapters/telemetry"
	"go.gauntlet.dev/gauntlet/internal/core/ports"
)

// AdapterSet groups all adapter providers with interface bindings.
var AdapterSet = kessoku.Set(
	// Logger (returns ports.Logger directly)
	kessoku.Provide(logger.New),

	// Config Loader
	kessoku.Bind[ports.ConfigLoader](kessoku.Provide(config.NewLoader)),

	// Shell Executor
	kessoku.Bind[ports.Executor](kessoku.Provide(shell.NewExecutor)),

	// Git Source Fetcher
	kessoku.Bind[ports.SourceFetcher](kessoku.Provide(git.NewFetcher)),

	// Conda Provisioner
	kessoku.Bind[ports.Provisioner](kessoku.Provide(conda.NewProvisioner)),

	// Rustup Toolchain Installer
	kessoku.Bind[ports.ToolchainInstaller](kessoku.Provide(rustup.NewInstaller)),

	// Cargo Snapshot Manager
	kessoku.Bind[ports.SnapshotManager](kessoku.Provide(cargo.NewSnapshotManager)),

	// Snapshot State Store
	kessoku.Bind[ports.SnapshotStore](kessoku.Provide(state.NewStore)),

	// FS Digester
	kessoku.Bind[ports.Digester](kessoku.Provide(fs.NewDigester)),

	// Telemetry Tracer
	kessoku.Bind[ports.Tracer](kessoku.Provide(telemetry.NewOTelTracer)),
)

// AppSet groups application-layer providers.
var AppSet = kessoku.Set(
	kessoku.Provide(New),
	kessoku.Provide(NewComponents),
)

var _ = kessoku.Inject[*Components]("InitializeApp",
	AdapterSet,
	AppSet,
)

// InitializeApp is a stub for wire generation.
func InitializeApp() (*Components, error) {
	panic("wire")
}
