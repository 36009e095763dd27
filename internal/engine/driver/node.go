package driver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.kinematix.dev/extbuild/internal/adapters/logger"
	"go.kinematix.dev/extbuild/internal/adapters/shell"
	"go.kinematix.dev/extbuild/internal/adapters/state"
	"go.kinematix.dev/extbuild/internal/adapters/telemetry"
	"go.kinematix.dev/extbuild/internal/core/ports"
)

// NodeID is the unique identifier for the build driver Graft node.
const NodeID graft.ID = "engine.driver"

func init() {
	graft.Register(graft.Node[*Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			state.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Driver, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildStateStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(runner, store, log, tel), nil
		},
	})
}
