package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/multiapi/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/multiapi/internal/adapters/hostmodel"          //nolint:depguard // Wired in app layer
	"go.trai.ch/multiapi/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/multiapi/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/multiapi/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/multiapi/internal/engine/classpath"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			hostmodel.NodeID,
			classpath.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}

			projects, err := graft.Dep[ports.HostProjectFactory](ctx)
			if err != nil {
				return nil, err
			}

			caches, err := graft.Dep[*classpath.Factory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, runner, projects, caches, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
