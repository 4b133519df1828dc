package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/servicehub/internal/adapters/driven/config/file"
	"github.com/custodia-labs/servicehub/internal/core/domain"
	"github.com/custodia-labs/servicehub/internal/core/ports/driving"
	"github.com/custodia-labs/servicehub/internal/core/services"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
	assert.Contains(t, settingsBackendCmd.Long, "sqlite")
	assert.Contains(t, settingsBackendCmd.Long, "memory")
}

func TestSettingsShow_Defaults(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	out, err := executeCommand("settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Storage]")
	assert.Contains(t, out, "Backend: SQLite (persistent, local file)")
	assert.Contains(t, out, "Data directory: (default)")
	assert.Contains(t, out, "Color: yes")
}

func TestSettingsShow_MemoryHidesDataDir(t *testing.T) {
	ts, restore := setupTestServices()
	defer restore()
	ts.settings.settings.Storage.Backend = domain.StorageMemory

	out, err := executeCommand("settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Backend: Memory")
	assert.NotContains(t, out, "Data directory")
}

func TestSettingsShow_Error(t *testing.T) {
	ts, restore := setupTestServices()
	defer restore()
	ts.settings.getErr = errors.New("config unreadable")

	_, err := executeCommand("settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config unreadable")
}

func TestSettingsShow_InvalidBackendSuggestsFix(t *testing.T) {
	ts, restore := setupTestServices()
	defer restore()
	ts.settings.getErr = domain.ErrUnsupportedBackend

	out, err := executeCommand("settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning:")
	assert.Contains(t, out, "servicehub settings backend sqlite")
}

// bootstrapFromConfigDir wires the real TOML config store. Opening the
// registry fails the test.
func bootstrapFromConfigDir(t *testing.T) BootstrapFunc {
	t.Helper()
	return func(dir string) (*Services, error) {
		configStore, err := file.NewConfigStore(dir)
		if err != nil {
			return nil, err
		}
		return &Services{
			Catalogue: services.NewServiceCatalogue(),
			Settings:  services.NewSettingsService(configStore),
			OpenRegistry: func() (driving.ServiceRegistry, error) {
				t.Error("registry must not be opened")
				return nil, errors.New("unexpected registry open")
			},
			NewDemoRegistry: func() driving.ServiceRegistry { return &mockRegistry{} },
		}, nil
	}
}

func TestSettingsBackend_RepairsInvalidConfig(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[storage]\nbackend = \"postgres\"\n"), 0600))
	SetBootstrap(bootstrapFromConfigDir(t))

	out, err := executeCommand("--config-dir", dir, "settings", "backend", "sqlite")

	require.NoError(t, err)
	assert.Contains(t, out, "Storage backend set to: SQLite")

	reloaded, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", reloaded.GetString("storage.backend"))
}

func TestInvalidBackend_DoesNotBlockOtherCommands(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[storage]\nbackend = \"postgres\"\n"), 0600))
	SetBootstrap(bootstrapFromConfigDir(t))

	for _, args := range [][]string{
		{"settings", "show"},
		{"types"},
		{"demo"},
		{"version"},
	} {
		_, err := executeCommand(append([]string{"--config-dir", dir}, args...)...)
		assert.NoError(t, err, "args %v", args)
	}
}

func TestSettingsBackend(t *testing.T) {
	ts, restore := setupTestServices()
	defer restore()

	out, err := executeCommand("settings", "backend", "memory")

	require.NoError(t, err)
	assert.Contains(t, out, "Storage backend set to: Memory")
	assert.Equal(t, domain.StorageMemory, ts.settings.settings.Storage.Backend)
}

func TestSettingsBackend_Invalid(t *testing.T) {
	ts, restore := setupTestServices()
	defer restore()

	_, err := executeCommand("settings", "backend", "postgres")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedBackend))
	assert.Equal(t, domain.StorageSQLite, ts.settings.settings.Storage.Backend)
}

func TestSettingsDataDir(t *testing.T) {
	ts, restore := setupTestServices()
	defer restore()

	out, err := executeCommand("settings", "data-dir", "/var/lib/servicehub")

	require.NoError(t, err)
	assert.Contains(t, out, "Data directory set to: /var/lib/servicehub")
	assert.Equal(t, "/var/lib/servicehub", ts.settings.settings.Storage.DataDir)
}

func TestSettingsColor(t *testing.T) {
	ts, restore := setupTestServices()
	defer restore()

	out, err := executeCommand("settings", "color", "false")

	require.NoError(t, err)
	assert.Contains(t, out, "Color output: false")
	assert.False(t, ts.settings.settings.Output.Color)
}

func TestSettingsColor_Invalid(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	_, err := executeCommand("settings", "color", "sometimes")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSettings_NotConfigured(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()
	settingsService = nil

	for _, args := range [][]string{
		{"settings"},
		{"settings", "backend", "memory"},
		{"settings", "data-dir", "/tmp"},
		{"settings", "color", "true"},
	} {
		_, err := executeCommand(args...)
		require.Error(t, err, "args %v", args)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
}
