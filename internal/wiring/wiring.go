// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/streak/internal/adapters/cache"
	_ "go.trai.ch/streak/internal/adapters/config"
	_ "go.trai.ch/streak/internal/adapters/github"
	_ "go.trai.ch/streak/internal/adapters/logger"
	_ "go.trai.ch/streak/internal/adapters/metrics"
	_ "go.trai.ch/streak/internal/adapters/svg"
	_ "go.trai.ch/streak/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/streak/internal/app"
)
