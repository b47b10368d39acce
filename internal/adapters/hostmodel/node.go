package hostmodel

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/multiapi/internal/core/ports"
)

// NodeID is the unique identifier for the host project factory Graft node.
const NodeID graft.ID = "adapter.host_project_factory"

func init() {
	graft.Register(graft.Node[ports.HostProjectFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostProjectFactory, error) {
			return NewFactory(), nil
		},
	})
}
