package classpath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/multiapi/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/multiapi/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/multiapi/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/multiapi/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/multiapi/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/multiapi/internal/core/ports"
)

// NodeID is the unique identifier for the classpath cache factory Graft node.
const NodeID graft.ID = "engine.classpath"

// Factory creates caches bound to one project's options.
type Factory struct {
	runner    ports.ToolRunner
	verifier  ports.Verifier
	hasher    ports.Hasher
	store     ports.CacheRecordStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(
	runner ports.ToolRunner,
	verifier ports.Verifier,
	hasher ports.Hasher,
	store ports.CacheRecordStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Factory {
	return &Factory{
		runner:    runner,
		verifier:  verifier,
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
	}
}

// New creates a Cache for opts.
func (f *Factory) New(opts Options) *Cache {
	return New(opts, f.runner, f.verifier, f.hasher, f.store, f.telemetry, f.logger)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.VerifierNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			runner, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheRecordStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(runner, verifier, hasher, store, telemetry, log), nil
		},
	})
}
