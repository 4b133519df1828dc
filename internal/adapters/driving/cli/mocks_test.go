package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/servicehub/internal/core/domain"
	"github.com/custodia-labs/servicehub/internal/core/ports/driving"
)

var errMockFailure = errors.New("mock failure")

// mockRegistry keeps records in a slice and resolves kinds from the domain
// prefix table.
type mockRegistry struct {
	services []domain.Service
	closed   bool
	fail     bool
	closeErr error
}

func (m *mockRegistry) Create(_ context.Context, serviceID, userID string) (*domain.Service, error) {
	if m.fail {
		return nil, errMockFailure
	}
	if len(serviceID) < domain.PrefixLen {
		return nil, domain.ErrInvalidInput
	}
	kind, ok := domain.KindForPrefix(serviceID[:domain.PrefixLen])
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownServiceType, serviceID)
	}
	svc := domain.NewService(kind, serviceID, userID)
	svc.Ref = fmt.Sprintf("ref-%d", len(m.services)+1)
	m.services = append(m.services, svc)
	return &svc, nil
}

func (m *mockRegistry) Get(_ context.Context, ref string) (*domain.Service, error) {
	for i := range m.services {
		if m.services[i].Ref == ref {
			svc := m.services[i]
			return &svc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistry) Perform(_ context.Context, ref string) (*domain.Service, error) {
	for i := range m.services {
		if m.services[i].Ref == ref {
			m.services[i].Perform()
			svc := m.services[i]
			return &svc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistry) Services(_ context.Context, userID string) ([]domain.Service, error) {
	if m.fail {
		return nil, errMockFailure
	}
	out := []domain.Service{}
	for _, svc := range m.services {
		if svc.UserID == userID {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *mockRegistry) Users(_ context.Context) ([]string, error) {
	if m.fail {
		return nil, errMockFailure
	}
	var users []string
	seen := make(map[string]bool)
	for _, svc := range m.services {
		if !seen[svc.UserID] {
			seen[svc.UserID] = true
			users = append(users, svc.UserID)
		}
	}
	return users, nil
}

func (m *mockRegistry) Close() error {
	m.closed = true
	m.services = nil
	return m.closeErr
}

type mockCatalogue struct{}

func (mockCatalogue) List() []domain.ServiceKind {
	return domain.AllKinds()
}

func (mockCatalogue) Resolve(serviceID string) (domain.ServiceKind, error) {
	if len(serviceID) < domain.PrefixLen {
		return "", domain.ErrInvalidInput
	}
	kind, ok := domain.KindForPrefix(strings.ToUpper(serviceID[:domain.PrefixLen]))
	if !ok {
		return "", domain.ErrUnknownServiceType
	}
	return kind, nil
}

type mockSettings struct {
	settings domain.AppSettings
	getErr   error
}

func newMockSettings() *mockSettings {
	return &mockSettings{settings: domain.DefaultAppSettings()}
}

func (m *mockSettings) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettings) SetStorageBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, backend)
	}
	m.settings.Storage.Backend = backend
	return nil
}

func (m *mockSettings) SetDataDir(dir string) error {
	m.settings.Storage.DataDir = dir
	return nil
}

func (m *mockSettings) SetColor(enabled bool) error {
	m.settings.Output.Color = enabled
	return nil
}

func (m *mockSettings) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	registry *mockRegistry
	settings *mockSettings
	demo     []*mockRegistry
}

// setupTestServices installs mocks and returns a cleanup that restores the
// previous services.
func setupTestServices() (*testServices, func()) {
	prev := &Services{
		Registry:        serviceRegistry,
		Catalogue:       serviceCatalogue,
		Settings:        settingsService,
		OpenRegistry:    openRegistry,
		NewDemoRegistry: newDemoRegistry,
	}
	prevBootstrap := bootstrap
	prevConfigDir := configDir

	ts := &testServices{
		registry: &mockRegistry{},
		settings: newMockSettings(),
	}
	SetBootstrap(nil)
	SetServices(&Services{
		Registry:  ts.registry,
		Catalogue: mockCatalogue{},
		Settings:  ts.settings,
		NewDemoRegistry: func() driving.ServiceRegistry {
			r := &mockRegistry{}
			ts.demo = append(ts.demo, r)
			return r
		},
	})

	return ts, func() {
		SetServices(prev)
		SetBootstrap(prevBootstrap)
		configDir = prevConfigDir
		teardown = nil
	}
}
