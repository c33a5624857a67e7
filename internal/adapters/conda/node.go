package conda

import (
	"context"

	"github.com/grindlemire/graft"
	"go.gauntlet.dev/gauntlet/internal/adapters/logger"
	"go.gauntlet.dev/gauntlet/internal/adapters/shell"
	"go.gauntlet.dev/gauntlet/internal/core/ports"
)

// NodeID is the unique identifier for the provisioner adapter Graft node.
const NodeID graft.ID = "adapter.provisioner"

func init() {
	graft.Register(graft.Node[ports.Provisioner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Provisioner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvisioner(executor, log), nil
		},
	})
}
