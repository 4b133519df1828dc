package driving

import "github.com/custodia-labs/servicehub/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// SetStorageBackend selects the service store implementation.
	SetStorageBackend(backend domain.StorageBackend) error

	// SetDataDir sets the SQLite data directory.
	SetDataDir(dir string) error

	// SetColor enables or disables styled output.
	SetColor(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
