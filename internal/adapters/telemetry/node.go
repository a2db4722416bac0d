package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/streak/internal/adapters/metrics"
	"go.trai.ch/streak/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{metrics.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			m, err := graft.Dep[*metrics.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			otel.SetTracerProvider(NewProvider(m))
			return NewOTelTracer(TracerName), nil
		},
	})
}
