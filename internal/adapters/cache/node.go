package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/streak/internal/adapters/config"
	"go.trai.ch/streak/internal/adapters/metrics"
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports"
)

const (
	// ResultNodeID is the unique identifier for the result cache Graft node.
	ResultNodeID graft.ID = "adapter.result_cache"
	// RenderNodeID is the unique identifier for the render cache Graft node.
	RenderNodeID graft.ID = "adapter.render_cache"
)

func init() {
	graft.Register(graft.Node[*ResultCache[domain.StreakResult]]{
		ID:        ResultNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, metrics.ObserverNodeID},
		Run: func(ctx context.Context) (*ResultCache[domain.StreakResult], error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			observer, err := graft.Dep[ports.CacheObserver](ctx)
			if err != nil {
				return nil, err
			}
			return NewResultCache[domain.StreakResult](cfg.Cache.ResultTTL, cfg.Cache.ResultMaxEntries, observer), nil
		},
	})

	graft.Register(graft.Node[*RenderCache]{
		ID:        RenderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, metrics.ObserverNodeID},
		Run: func(ctx context.Context) (*RenderCache, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			observer, err := graft.Dep[ports.CacheObserver](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderCache(cfg.Cache.RenderTTL, cfg.Cache.RenderMaxEntries, observer), nil
		},
	})
}
