package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.gauntlet.dev/gauntlet/internal/adapters/detector"
	"go.gauntlet.dev/gauntlet/internal/adapters/logger"
	progrocktracer "go.gauntlet.dev/gauntlet/internal/adapters/telemetry/progrock"
	"go.gauntlet.dev/gauntlet/internal/core/ports"
)

// TracerNodeID is the unique identifier for the telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			if detector.DetectEnvironment() == detector.ModeInteractive {
				return progrocktracer.New(), nil
			}
			NewLoggerBridge(log).Install()
			return NewOTelTracer("gauntlet"), nil
		},
	})
}
