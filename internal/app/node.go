package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/streak/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/adapters/github"    //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/adapters/svg"       //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ServerNodeID is the unique identifier for the HTTP Server Graft node.
	ServerNodeID graft.ID = "app.server"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Server *Server
	Logger ports.Logger
	Config *domain.Config
}

type jsonSwitcher interface {
	SetJSON(enable bool)
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			github.NodeID,
			svg.NodeID,
			cache.ResultNodeID,
			cache.RenderNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Server Node
	graft.Register(graft.Node[*Server]{
		ID:        ServerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runServerNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			ServerNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	source, err := graft.Dep[ports.ContributionSource](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.CardRenderer](ctx)
	if err != nil {
		return nil, err
	}

	results, err := graft.Dep[*cache.ResultCache[domain.StreakResult]](ctx)
	if err != nil {
		return nil, err
	}

	renders, err := graft.Dep[*cache.RenderCache](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(source, renderer, results, renders, log).WithTracer(tracer), nil
}

func runServerNode(ctx context.Context) (*Server, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

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

	return NewServer(a, cfg, m, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	srv, err := graft.Dep[*Server](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	if s, ok := log.(jsonSwitcher); ok && cfg.Log.JSON {
		s.SetJSON(true)
	}

	return &Components{
		App:    a,
		Server: srv,
		Logger: log,
		Config: cfg,
	}, nil
}
