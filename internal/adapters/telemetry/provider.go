package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.kinematix.dev/extbuild/internal/adapters/logger"
	"go.kinematix.dev/extbuild/internal/adapters/telemetry/progrock"
	"go.kinematix.dev/extbuild/internal/core/ports"
)

// ProgressVar selects the progress display: "tape" records phases on a
// progrock tape; anything else streams tool output straight through.
const ProgressVar = "EXTBUILD_PROGRESS"

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			if os.Getenv(ProgressVar) == "tape" {
				return progrock.New(), nil
			}
			return NewStream(os.Stdout, os.Stderr, log), nil
		},
	})
}
