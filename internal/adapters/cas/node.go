package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/multiapi/internal/core/ports"
)

// NodeID is the unique identifier for the cache record store Graft node.
const NodeID graft.ID = "adapter.cache_record_store"

func init() {
	graft.Register(graft.Node[ports.CacheRecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheRecordStore, error) {
			return NewStore(), nil
		},
	})
}
