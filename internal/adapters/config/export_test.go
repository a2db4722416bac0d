package config

import "go.trai.ch/streak/internal/core/ports"

// NewLoaderWithEnv creates a loader reading env instead of the process environment.
func NewLoaderWithEnv(logger ports.Logger, env []string) *Loader {
	return &Loader{logger: logger, environ: func() []string { return env }}
}
