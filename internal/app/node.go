package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.gauntlet.dev/gauntlet/internal/adapters/cargo"  //nolint:depguard // Wired in app layer
	"go.gauntlet.dev/gauntlet/internal/adapters/conda"  //nolint:depguard // Wired in app layer
	"go.gauntlet.dev/gauntlet/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.gauntlet.dev/gauntlet/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.gauntlet.dev/gauntlet/internal/adapters/git"    //nolint:depguard // Wired in app layer
	"go.gauntlet.dev/gauntlet/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.gauntlet.dev/gauntlet/internal/adapters/rustup" //nolint:depguard // Wired in app layer
	"go.gauntlet.dev/gauntlet/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.gauntlet.dev/gauntlet/internal/adapters/state"  //nolint:depguard // Wired in app layer
	"go.gauntlet.dev/gauntlet/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.gauntlet.dev/gauntlet/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			git.NodeID,
			conda.NodeID,
			rustup.NodeID,
			cargo.NodeID,
			state.NodeID,
			fs.DigesterNodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.SourceFetcher](ctx)
	if err != nil {
		return nil, err
	}

	provisioner, err := graft.Dep[ports.Provisioner](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.ToolchainInstaller](ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := graft.Dep[ports.SnapshotManager](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	digester, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, fetcher, provisioner, installer, snapshots, store, digester, executor, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Tracer: tracer,
	}, nil
}
