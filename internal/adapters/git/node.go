package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.gauntlet.dev/gauntlet/internal/adapters/logger"
	"go.gauntlet.dev/gauntlet/internal/core/ports"
)

// NodeID is the unique identifier for the source fetcher adapter Graft node.
const NodeID graft.ID = "adapter.source_fetcher"

func init() {
	graft.Register(graft.Node[ports.SourceFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceFetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(log), nil
		},
	})
}
