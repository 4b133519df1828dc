package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/servicehub/internal/core/domain"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure storage and output settings.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend [sqlite|memory]",
	Short: "Set the storage backend",
	Long: `Set where service records are kept.

Available backends:
  sqlite - SQLite database in the data directory (persistent)
  memory - in-process only, discarded when the command exits`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsBackend,
}

var settingsDataDirCmd = &cobra.Command{
	Use:   "data-dir [path]",
	Short: "Set the SQLite data directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDataDir,
}

var settingsColorCmd = &cobra.Command{
	Use:   "color [true|false]",
	Short: "Enable or disable coloured output",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsColor,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	settingsCmd.AddCommand(settingsDataDirCmd)
	settingsCmd.AddCommand(settingsColorCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if errors.Is(err, domain.ErrUnsupportedBackend) {
		st := outputStyles(cmd)
		cmd.Println(st.Error(fmt.Sprintf("Warning: %v", err)))
		cmd.Printf("Run 'servicehub settings backend %s' to fix the storage backend.\n", domain.StorageSQLite)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	if settings.Storage.Backend.IsPersistent() {
		dataDir := settings.Storage.DataDir
		if dataDir == "" {
			dataDir = "(default)"
		}
		cmd.Printf("  Data directory: %s\n", dataDir)
	}
	cmd.Println()

	cmd.Println("[Output]")
	color := "no"
	if settings.Output.Color {
		color = "yes"
	}
	cmd.Printf("  Color: %s\n", color)

	return nil
}

func runSettingsBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	backend := domain.StorageBackend(args[0])
	if err := settingsService.SetStorageBackend(backend); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	cmd.Printf("Storage backend set to: %s\n", backend.Description())
	return nil
}

func runSettingsDataDir(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.SetDataDir(args[0]); err != nil {
		return fmt.Errorf("failed to set data directory: %w", err)
	}

	cmd.Printf("Data directory set to: %s\n", args[0])
	return nil
}

func runSettingsColor(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	enabled, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("invalid color value %q: %w", args[0], domain.ErrInvalidInput)
	}
	if err := settingsService.SetColor(enabled); err != nil {
		return fmt.Errorf("failed to set color: %w", err)
	}

	cmd.Printf("Color output: %t\n", enabled)
	return nil
}
