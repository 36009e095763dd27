package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.kinematix.dev/extbuild/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.kinematix.dev/extbuild/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.kinematix.dev/extbuild/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"go.kinematix.dev/extbuild/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.kinematix.dev/extbuild/internal/core/ports"
	"go.kinematix.dev/extbuild/internal/engine/driver"
	"go.kinematix.dev/extbuild/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved application pieces main needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			driver.NodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			drv, err := graft.Dep[*driver.Driver](ctx)
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

			return New(loader, res, drv, store, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
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

			return &Components{
				App:       application,
				Logger:    log,
				Telemetry: tel,
			}, nil
		},
	})
}
