package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.kinematix.dev/extbuild/internal/core/ports"
)

// NodeID is the unique identifier for the build state store Graft node.
const NodeID graft.ID = "adapter.build_state_store"

func init() {
	graft.Register(graft.Node[ports.BuildStateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BuildStateStore, error) {
			store, err := NewStore(DefaultPath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
