package main

import (
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/servicehub/internal/adapters/driven/config/file"
	"github.com/custodia-labs/servicehub/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/servicehub/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/servicehub/internal/adapters/driving/cli"
	"github.com/custodia-labs/servicehub/internal/core/domain"
	"github.com/custodia-labs/servicehub/internal/core/ports/driven"
	"github.com/custodia-labs/servicehub/internal/core/ports/driving"
	"github.com/custodia-labs/servicehub/internal/core/services"
	"github.com/custodia-labs/servicehub/internal/logger"
)

// bootstrap wires config and settings for one CLI invocation. Storage is
// opened later, and only by commands that need the registry.
func bootstrap(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("config file %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	catalogue := services.NewServiceCatalogue()
	baseDir := filepath.Dir(configStore.Path())

	return &cli.Services{
		Catalogue: catalogue,
		Settings:  settingsService,
		OpenRegistry: func() (driving.ServiceRegistry, error) {
			return openRegistry(settingsService, catalogue, baseDir)
		},
		NewDemoRegistry: func() driving.ServiceRegistry {
			return services.NewServiceRegistry(memory.NewServiceStore())
		},
	}, nil
}

// openRegistry builds a registry over the store selected by settings.
func openRegistry(
	settingsService driving.SettingsService,
	catalogue driving.ServiceCatalogue,
	configDir string,
) (driving.ServiceRegistry, error) {
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	store, err := openServiceStore(settings.Storage, configDir)
	if err != nil {
		return nil, err
	}

	registry := services.NewServiceRegistry(store)
	registry.SetCatalogue(catalogue)
	return registry, nil
}

// openServiceStore opens the configured backend. SQLite data defaults to
// <config-dir>/data.
func openServiceStore(cfg domain.StorageSettings, configDir string) (driven.ServiceStore, error) {
	switch cfg.Backend {
	case domain.StorageMemory:
		logger.Debug("using in-memory service store")
		return memory.NewServiceStore(), nil
	case domain.StorageSQLite:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = filepath.Join(configDir, "data")
		}
		db, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening service database: %w", err)
		}
		return db.ServiceStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, cfg.Backend)
	}
}
