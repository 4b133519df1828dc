package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/servicehub/internal/core/domain"
	"github.com/custodia-labs/servicehub/internal/core/ports/driving"
	"github.com/custodia-labs/servicehub/internal/logger"
)

// executeCommand runs rootCmd with args and returns everything written to
// its output and error streams.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := run()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "servicehub", rootCmd.Use)
}

func TestRootCmd_LongListsPrefixes(t *testing.T) {
	for _, prefix := range []string{"CP", "EL", "CL", "PL"} {
		assert.Contains(t, rootCmd.Long, prefix)
	}
}

func TestRootCmd_HasGlobalFlags(t *testing.T) {
	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)
	assert.Equal(t, "false", v.DefValue)

	dir := rootCmd.PersistentFlags().Lookup("config-dir")
	require.NotNil(t, dir)
	assert.Equal(t, "", dir.DefValue)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"demo", "service", "types", "settings", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestSetup_RunsBootstrapWithConfigDir(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	var gotDir string
	registry := &mockRegistry{}
	SetBootstrap(func(dir string) (*Services, error) {
		gotDir = dir
		return &Services{
			Catalogue: mockCatalogue{},
			OpenRegistry: func() (driving.ServiceRegistry, error) {
				return registry, nil
			},
		}, nil
	})

	_, err := executeCommand("--config-dir", "/tmp/servicehub-test", "service", "create", "CP001", "USER123")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/servicehub-test", gotDir)
	assert.True(t, registry.closed, "registry should be closed after the command")
	assert.Empty(t, teardown)
}

func TestSetup_BootstrapError(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	SetBootstrap(func(string) (*Services, error) {
		return nil, errors.New("disk full")
	})

	_, err := executeCommand("types")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising services")
	assert.Contains(t, err.Error(), "disk full")
}

func TestRegistryOpenedOnlyForServiceCommands(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	opened := 0
	SetBootstrap(func(string) (*Services, error) {
		return &Services{
			Catalogue: mockCatalogue{},
			Settings:  newMockSettings(),
			OpenRegistry: func() (driving.ServiceRegistry, error) {
				opened++
				return &mockRegistry{}, nil
			},
			NewDemoRegistry: func() driving.ServiceRegistry { return &mockRegistry{} },
		}, nil
	})

	for _, args := range [][]string{
		{"types"},
		{"version"},
		{"demo"},
		{"settings", "show"},
		{"settings", "backend", "memory"},
	} {
		_, err := executeCommand(args...)
		require.NoError(t, err, "args %v", args)
	}
	assert.Equal(t, 0, opened)

	_, err := executeCommand("service", "users")
	require.NoError(t, err)
	assert.Equal(t, 1, opened)
}

func TestServiceCmd_OpenRegistryError(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	SetBootstrap(func(string) (*Services, error) {
		return &Services{
			OpenRegistry: func() (driving.ServiceRegistry, error) {
				return nil, domain.ErrUnsupportedBackend
			},
		}, nil
	})

	_, err := executeCommand("service", "list", "USER123")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedBackend))
	assert.Contains(t, err.Error(), "opening service registry")
}

func TestTeardown_RunsWhenCommandFails(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	registry := &mockRegistry{}
	SetBootstrap(func(string) (*Services, error) {
		return &Services{
			OpenRegistry: func() (driving.ServiceRegistry, error) {
				return registry, nil
			},
		}, nil
	})

	_, err := executeCommand("service", "perform", "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, registry.closed, "registry should be closed even when the command fails")
	assert.Empty(t, teardown)
}

func TestTeardown_ReportsCloseError(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	registry := &mockRegistry{closeErr: errors.New("database is locked")}
	SetBootstrap(func(string) (*Services, error) {
		return &Services{
			OpenRegistry: func() (driving.ServiceRegistry, error) {
				return registry, nil
			},
		}, nil
	})

	_, err := executeCommand("service", "users")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestSetup_VerboseFlag(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()
	defer func() {
		verbose = false
		logger.SetVerbose(false)
	}()

	_, err := executeCommand("-v", "types")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestSetServices_Nil(t *testing.T) {
	_, restore := setupTestServices()
	defer restore()

	SetServices(nil)

	assert.Nil(t, serviceRegistry)
	assert.Nil(t, serviceCatalogue)
	assert.Nil(t, settingsService)
	assert.Nil(t, openRegistry)
	assert.Nil(t, newDemoRegistry)
}
