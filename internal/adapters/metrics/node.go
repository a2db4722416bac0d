package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/streak/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the metrics Graft node.
	NodeID graft.ID = "adapter.metrics"
	// ObserverNodeID is the unique identifier for the cache observer Graft node.
	ObserverNodeID graft.ID = "adapter.cache_observer"
)

func init() {
	graft.Register(graft.Node[*Metrics]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Metrics, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.CacheObserver]{
		ID:        ObserverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.CacheObserver, error) {
			m, err := graft.Dep[*Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	})
}
