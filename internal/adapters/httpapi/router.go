// Package httpapi exposes the streak service over HTTP.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports"
)

// Routes served by the router.
const (
	RouteCard    = "/api/streak"
	RouteStats   = "/api/streak.json"
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)

// Service is the application logic behind the HTTP surface.
type Service interface {
	Stats(ctx context.Context, username string) (domain.StreakResult, error)
	Card(ctx context.Context, username string, opts domain.CardOptions) (string, error)
	ErrorCard(err error, opts domain.CardOptions) string
}

// RequestObserver records served requests.
type RequestObserver interface {
	ObserveRequest(route string, code int, elapsed time.Duration)
}

// Options configures the router.
type Options struct {
	Server   domain.ServerConfig
	Logger   ports.Logger
	Observer RequestObserver
	// Metrics serves the metrics endpoint; nil leaves it unrouted.
	Metrics http.Handler
}

// NewRouter builds the HTTP handler of the service.
func NewRouter(svc Service, opts Options) http.Handler {
	h := &handler{
		svc:    svc,
		cfg:    opts.Server,
		logger: opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if opts.Observer != nil {
		r.Use(observe(opts.Observer))
	}

	r.Get(RouteHealth, h.health)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, RouteMetrics, opts.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(rateLimit(opts.Server))
		r.Get(RouteCard, h.card)
		r.Get(RouteStats, h.stats)
	})

	return r
}

func rateLimit(cfg domain.ServerConfig) func(http.Handler) http.Handler {
	if cfg.RateLimit <= 0 || cfg.RateWindow <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(
		cfg.RateLimit,
		cfg.RateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}

func observe(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			obs.ObserveRequest(route, status, time.Since(start))
		})
	}
}
