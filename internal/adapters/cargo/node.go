package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.gauntlet.dev/gauntlet/internal/adapters/logger"
	"go.gauntlet.dev/gauntlet/internal/adapters/shell"
	"go.gauntlet.dev/gauntlet/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot manager adapter Graft node.
const NodeID graft.ID = "adapter.snapshot_manager"

func init() {
	graft.Register(graft.Node[ports.SnapshotManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SnapshotManager, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSnapshotManager(executor, log), nil
		},
	})
}
