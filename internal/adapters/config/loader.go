// Package config provides the configuration loader for the streak service.
package config

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is read when no config path is given. It may be absent.
	DefaultFileName = "streak.yaml"

	// PathEnv names the variable holding an explicit config file path.
	PathEnv = "STREAK_CONFIG"

	tokenPrefix   = "PAT_"
	fallbackToken = "GITHUB_TOKEN"
)

// Loader implements ports.ConfigLoader using a YAML file and environment overrides.
type Loader struct {
	logger  ports.Logger
	environ func() []string
}

// NewLoader creates a new configuration loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, environ: os.Environ}
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment, in that order of precedence. An empty path reads DefaultFileName
// when it exists.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	file, err := l.readFile(path)
	if err != nil {
		return nil, err
	}
	if file != nil {
		if err := applyFile(&cfg, file); err != nil {
			return nil, err
		}
	}

	env := parseEnviron(l.environ())
	if err := applyEnv(&cfg, env); err != nil {
		return nil, err
	}
	cfg.Upstream.Tokens = collectTokens(env)
	if len(cfg.Upstream.Tokens) == 0 {
		l.logger.Warn("no GitHub token configured; card requests will fail", "variables", tokenPrefix+"*, "+fallbackToken)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) readFile(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	//nolint:gosec // path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	l.logger.Info("loaded configuration file", "path", path)
	return &file, nil
}

func applyFile(cfg *domain.Config, file *File) error {
	setString(&cfg.Server.Addr, file.Server.Addr)
	setInt(&cfg.Server.CacheSeconds, file.Server.CacheSeconds)
	setInt(&cfg.Server.ErrorCacheSeconds, file.Server.ErrorCacheSeconds)
	setInt(&cfg.Server.RateLimit, file.Server.RateLimit)
	setInt(&cfg.Cache.ResultMaxEntries, file.Cache.ResultMaxEntries)
	setInt(&cfg.Cache.RenderMaxEntries, file.Cache.RenderMaxEntries)
	setString(&cfg.Upstream.GraphQLURL, file.Upstream.GraphQLURL)
	if file.Upstream.BreakerFailures != nil {
		cfg.Upstream.BreakerFailures = *file.Upstream.BreakerFailures
	}
	cfg.Log.JSON = file.Log.JSON

	durations := []struct {
		key    string
		value  string
		target *time.Duration
	}{
		{"server.rateWindow", file.Server.RateWindow, &cfg.Server.RateWindow},
		{"server.shutdownTimeout", file.Server.ShutdownTimeout, &cfg.Server.ShutdownTimeout},
		{"cache.resultTTL", file.Cache.ResultTTL, &cfg.Cache.ResultTTL},
		{"cache.renderTTL", file.Cache.RenderTTL, &cfg.Cache.RenderTTL},
		{"upstream.timeout", file.Upstream.Timeout, &cfg.Upstream.Timeout},
		{"upstream.breakerTimeout", file.Upstream.BreakerTimeout, &cfg.Upstream.BreakerTimeout},
	}
	for _, d := range durations {
		if err := setDuration(d.target, d.key, d.value); err != nil {
			return err
		}
	}
	return nil
}

func applyEnv(cfg *domain.Config, env map[string]string) error {
	setString(&cfg.Server.Addr, env["STREAK_ADDR"])
	setString(&cfg.Upstream.GraphQLURL, env["GITHUB_GRAPHQL_URL"])
	if v, ok := env["STREAK_LOG_JSON"]; ok {
		cfg.Log.JSON = domain.ParseBool(v)
	}

	if err := setDuration(&cfg.Cache.ResultTTL, "STREAK_RESULT_TTL", env["STREAK_RESULT_TTL"]); err != nil {
		return err
	}
	if err := setDuration(&cfg.Cache.RenderTTL, "STREAK_RENDER_TTL", env["STREAK_RENDER_TTL"]); err != nil {
		return err
	}

	if v := env["STREAK_CACHE_MAX_ENTRIES"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalidValue(err, "STREAK_CACHE_MAX_ENTRIES", v)
		}
		cfg.Cache.ResultMaxEntries = n
		cfg.Cache.RenderMaxEntries = n
	}

	// A malformed or zero CACHE_SECONDS keeps the current value.
	if v := env["CACHE_SECONDS"]; v != "" {
		if n, err := strconv.Atoi(v); err == nil && n != 0 {
			cfg.Server.CacheSeconds = n
		}
	}
	return nil
}

// collectTokens returns the non-empty PAT_* values ordered by variable name, or
// GITHUB_TOKEN alone when there are none.
func collectTokens(env map[string]string) []string {
	names := make([]string, 0, len(env))
	for name, value := range env {
		if strings.HasPrefix(name, tokenPrefix) && value != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	tokens := make([]string, 0, len(names))
	for _, name := range names {
		tokens = append(tokens, env[name])
	}
	if len(tokens) == 0 && env[fallbackToken] != "" {
		tokens = append(tokens, env[fallbackToken])
	}
	return tokens
}

func validate(cfg *domain.Config) error {
	checks := []struct {
		key string
		ok  bool
	}{
		{"cache.resultTTL", cfg.Cache.ResultTTL > 0},
		{"cache.renderTTL", cfg.Cache.RenderTTL > 0},
		{"server.cacheSeconds", cfg.Server.CacheSeconds > 0},
		{"server.errorCacheSeconds", cfg.Server.ErrorCacheSeconds > 0},
		{"server.rateLimit", cfg.Server.RateLimit > 0},
		{"server.rateWindow", cfg.Server.RateWindow > 0},
		{"upstream.timeout", cfg.Upstream.Timeout > 0},
		{"upstream.graphqlURL", cfg.Upstream.GraphQLURL != ""},
	}
	for _, c := range checks {
		if !c.ok {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfigValue, "configuration value must be set and positive"), "key", c.key)
		}
	}
	return nil
}

func parseEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if name, value, ok := strings.Cut(kv, "="); ok {
			env[name] = value
		}
	}
	return env
}

func setString(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func setInt(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}

func setDuration(target *time.Duration, key, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return invalidValue(err, key, value)
	}
	*target = d
	return nil
}

func invalidValue(err error, key, value string) error {
	return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrInvalidConfigValue.Error()), "key", key), "value", value)
}
