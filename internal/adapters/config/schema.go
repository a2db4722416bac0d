package config

// File represents the structure of the streak.yaml configuration file.
// Durations are strings accepted by time.ParseDuration. Upstream credentials are
// only read from the environment.
type File struct {
	Server   ServerDTO   `yaml:"server"`
	Cache    CacheDTO    `yaml:"cache"`
	Upstream UpstreamDTO `yaml:"upstream"`
	Log      LogDTO      `yaml:"log"`
}

// ServerDTO represents the server section.
type ServerDTO struct {
	Addr              string `yaml:"addr"`
	CacheSeconds      *int   `yaml:"cacheSeconds"`
	ErrorCacheSeconds *int   `yaml:"errorCacheSeconds"`
	RateLimit         *int   `yaml:"rateLimit"`
	RateWindow        string `yaml:"rateWindow"`
	ShutdownTimeout   string `yaml:"shutdownTimeout"`
}

// CacheDTO represents the cache section.
type CacheDTO struct {
	ResultTTL        string `yaml:"resultTTL"`
	ResultMaxEntries *int   `yaml:"resultMaxEntries"`
	RenderTTL        string `yaml:"renderTTL"`
	RenderMaxEntries *int   `yaml:"renderMaxEntries"`
}

// UpstreamDTO represents the upstream section.
type UpstreamDTO struct {
	GraphQLURL      string  `yaml:"graphqlURL"`
	Timeout         string  `yaml:"timeout"`
	BreakerFailures *uint32 `yaml:"breakerFailures"`
	BreakerTimeout  string  `yaml:"breakerTimeout"`
}

// LogDTO represents the log section.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
