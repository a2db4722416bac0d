package github

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/streak/internal/adapters/config"
	"go.trai.ch/streak/internal/adapters/logger"
	"go.trai.ch/streak/internal/adapters/metrics"
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports"
)

// NodeID is the unique identifier for the contribution source Graft node.
const NodeID graft.ID = "adapter.contribution_source"

func init() {
	graft.Register(graft.Node[ports.ContributionSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, metrics.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ContributionSource, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[*metrics.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
			return NewClient(cfg.Upstream, httpClient, m, log), nil
		},
	})
}
