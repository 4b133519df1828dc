// Package cli provides the servicehub command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/servicehub/internal/core/ports/driving"
	"github.com/custodia-labs/servicehub/internal/logger"
)

var (
	// version is set at build time via SetVersion.
	version = "dev"

	verbose   bool
	configDir string

	serviceRegistry  driving.ServiceRegistry
	serviceCatalogue driving.ServiceCatalogue
	settingsService  driving.SettingsService
	newDemoRegistry  func() driving.ServiceRegistry
	openRegistry     func() (driving.ServiceRegistry, error)

	bootstrap BootstrapFunc
	teardown  []func() error
)

// Services bundles the driving ports the commands use.
type Services struct {
	Registry  driving.ServiceRegistry
	Catalogue driving.ServiceCatalogue
	Settings  driving.SettingsService

	// OpenRegistry opens the configured store. Only the service commands
	// call it, so a broken storage setting never blocks settings or demo.
	OpenRegistry func() (driving.ServiceRegistry, error)

	// NewDemoRegistry returns a fresh, empty registry for the demo command.
	NewDemoRegistry func() driving.ServiceRegistry
}

// BootstrapFunc builds the services once global flags are parsed.
// It must not open storage; see Services.OpenRegistry.
type BootstrapFunc func(configDir string) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "servicehub",
	Short: "Request and track home services",
	Long: `servicehub creates carpentry, electrician, cleaning and plumbing
service requests for users and keeps each user's service history.

The first two characters of a service ID select its type:
  CP - carpentry    EL - electrician
  CL - cleaning     PL - plumbing

Example:
  servicehub service create CP001 USER123
  servicehub service list USER123
  servicehub demo`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.servicehub)")
}

// SetServices installs the services used by commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	serviceRegistry = s.Registry
	serviceCatalogue = s.Catalogue
	settingsService = s.Settings
	openRegistry = s.OpenRegistry
	newDemoRegistry = s.NewDemoRegistry
}

// SetBootstrap installs the function that builds services from flags.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the CLI. Command output goes to stdout; cobra's default for
// Print helpers is stderr.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return run()
}

// run executes the command tree and releases whatever the command opened,
// whether or not the command succeeded.
func run() (err error) {
	defer func() {
		if cerr := cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return rootCmd.Execute()
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}

	logger.Section("Bootstrap")
	s, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(s)
	return nil
}

// requireRegistry opens the configured registry unless one is installed.
func requireRegistry(cmd *cobra.Command, args []string) error {
	if err := setup(cmd, args); err != nil {
		return err
	}
	if serviceRegistry != nil || openRegistry == nil {
		return nil
	}

	registry, err := openRegistry()
	if err != nil {
		return fmt.Errorf("opening service registry: %w", err)
	}
	serviceRegistry = registry
	teardown = append(teardown, registry.Close)
	return nil
}

// cleanup runs teardown functions in reverse order and flushes the logger.
func cleanup() error {
	defer logger.Sync()

	var errs []error
	for i := len(teardown) - 1; i >= 0; i-- {
		if err := teardown[i](); err != nil {
			errs = append(errs, err)
		}
	}
	teardown = nil
	return errors.Join(errs...)
}
