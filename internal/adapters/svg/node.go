package svg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/streak/internal/core/ports"
)

// NodeID is the unique identifier for the card renderer Graft node.
const NodeID graft.ID = "adapter.card_renderer"

func init() {
	graft.Register(graft.Node[ports.CardRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CardRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
