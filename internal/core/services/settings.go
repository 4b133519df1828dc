package services

import (
	"fmt"

	"github.com/custodia-labs/servicehub/internal/core/domain"
	"github.com/custodia-labs/servicehub/internal/core/ports/driven"
	"github.com/custodia-labs/servicehub/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend = "storage.backend"
	keyStorageDataDir = "storage.data_dir"
	keyOutputColor    = "output.color"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	backend, err := s.getBackend(defaults.Storage.Backend)
	if err != nil {
		return nil, err
	}

	return &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: backend,
			DataDir: s.configStore.GetString(keyStorageDataDir),
		},
		Output: domain.OutputSettings{
			Color: s.getBool(keyOutputColor, defaults.Output.Color),
		},
	}, nil
}

// SetStorageBackend selects the service store implementation.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, backend)
	}
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	return s.configStore.Set(keyStorageBackend, backend.String())
}

// SetDataDir sets the SQLite data directory.
func (s *SettingsService) SetDataDir(dir string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	return s.configStore.Set(keyStorageDataDir, dir)
}

// SetColor enables or disables styled output.
func (s *SettingsService) SetColor(enabled bool) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	return s.configStore.Set(keyOutputColor, enabled)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// getBackend reads the backend key. An unknown value is an error, not a
// fallback to the default.
func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) (domain.StorageBackend, error) {
	val := s.configStore.GetString(keyStorageBackend)
	if val == "" {
		return defaultVal, nil
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return "", fmt.Errorf("%s = %q: %w", keyStorageBackend, val, domain.ErrUnsupportedBackend)
	}
	return backend, nil
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
