package domain

import "time"

// Config holds the runtime configuration of the streak service.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Upstream UpstreamConfig
	Log      LogConfig
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr string
	// CacheSeconds is the client and CDN max-age advertised on successful cards.
	CacheSeconds int
	// ErrorCacheSeconds is the shared max-age advertised on error cards.
	ErrorCacheSeconds int
	// RateLimit is the number of card requests allowed per IP and RateWindow.
	RateLimit       int
	RateWindow      time.Duration
	ShutdownTimeout time.Duration
}

// CacheConfig configures the two in-memory caches.
type CacheConfig struct {
	ResultTTL        time.Duration
	ResultMaxEntries int
	RenderTTL        time.Duration
	RenderMaxEntries int
}

// UpstreamConfig configures the contribution source.
type UpstreamConfig struct {
	GraphQLURL string
	Tokens     []string
	Timeout    time.Duration
	// BreakerFailures is the number of consecutive failures that opens the breaker.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON bool
}

// Defaults.
const (
	DefaultAddr              = ":8080"
	DefaultResultTTL         = 500 * time.Second
	DefaultRenderTTL         = 5 * time.Minute
	DefaultMaxEntries        = 1000
	DefaultCacheSeconds      = 3600
	DefaultErrorCacheSeconds = 600
	DefaultGraphQLURL        = "https://api.github.com/graphql"
	DefaultUpstreamTimeout   = 30 * time.Second
	DefaultBreakerFailures   = 5
	DefaultBreakerTimeout    = 30 * time.Second
	DefaultRateLimit         = 120
	DefaultRateWindow        = time.Minute
	DefaultShutdownTimeout   = 10 * time.Second
	OneDaySeconds            = 86400
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:              DefaultAddr,
			CacheSeconds:      DefaultCacheSeconds,
			ErrorCacheSeconds: DefaultErrorCacheSeconds,
			RateLimit:         DefaultRateLimit,
			RateWindow:        DefaultRateWindow,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
		Cache: CacheConfig{
			ResultTTL:        DefaultResultTTL,
			ResultMaxEntries: DefaultMaxEntries,
			RenderTTL:        DefaultRenderTTL,
			RenderMaxEntries: DefaultMaxEntries,
		},
		Upstream: UpstreamConfig{
			GraphQLURL:      DefaultGraphQLURL,
			Timeout:         DefaultUpstreamTimeout,
			BreakerFailures: DefaultBreakerFailures,
			BreakerTimeout:  DefaultBreakerTimeout,
		},
	}
}
