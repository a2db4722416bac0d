package ports

import "go.trai.ch/streak/internal/core/domain"

// ConfigLoader defines the interface for loading the service configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, if it exists, and applies
	// environment overrides on top of it. An empty path uses the default file name.
	Load(path string) (*domain.Config, error)
}
