package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/servicehub/internal/core/domain"
	"github.com/custodia-labs/servicehub/internal/core/ports/driven"
	"github.com/custodia-labs/servicehub/internal/core/ports/driving"
	"github.com/custodia-labs/servicehub/internal/logger"
)

// Ensure ServiceRegistry implements the interface.
var _ driving.ServiceRegistry = (*ServiceRegistry)(nil)

// ServiceRegistry is the factory for service records. It owns every record
// it creates through its store and hands out copies keyed by Ref.
//
// A registry is not safe for concurrent use; the underlying stores are.
type ServiceRegistry struct {
	store     driven.ServiceStore
	catalogue driving.ServiceCatalogue
	newRef    func() string
	now       func() time.Time
}

// NewServiceRegistry creates a registry over the given store using the
// built-in service catalogue.
func NewServiceRegistry(store driven.ServiceStore) *ServiceRegistry {
	return &ServiceRegistry{
		store:     store,
		catalogue: NewServiceCatalogue(),
		newRef:    uuid.NewString,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetCatalogue replaces the catalogue used for prefix dispatch.
func (r *ServiceRegistry) SetCatalogue(catalogue driving.ServiceCatalogue) {
	r.catalogue = catalogue
}

// Create builds a pending service of the kind selected by serviceID's prefix
// and appends it to the user's history.
func (r *ServiceRegistry) Create(ctx context.Context, serviceID, userID string) (*domain.Service, error) {
	if r.store == nil {
		return nil, domain.ErrNotImplemented
	}

	kind, err := r.catalogue.Resolve(serviceID)
	if err != nil {
		logger.Warn("rejecting service %q for %q: %v", serviceID, userID, err)
		return nil, err
	}

	service := domain.NewService(kind, serviceID, userID)
	service.Ref = r.newRef()
	service.CreatedAt = r.now()
	service.UpdatedAt = service.CreatedAt

	if err := r.store.Append(ctx, service); err != nil {
		return nil, fmt.Errorf("recording service %s: %w", serviceID, err)
	}

	logger.Debug("created %s service %s (ref %s) for %s at %.2f",
		kind, serviceID, service.Ref, userID, service.Price)
	return &service, nil
}

// Get retrieves a record by its Ref.
func (r *ServiceRegistry) Get(ctx context.Context, ref string) (*domain.Service, error) {
	if r.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if ref == "" {
		return nil, domain.ErrInvalidInput
	}
	return r.store.Get(ctx, ref)
}

// Perform carries the referenced service through IN_PROGRESS to COMPLETED
// and records the final status.
func (r *ServiceRegistry) Perform(ctx context.Context, ref string) (*domain.Service, error) {
	service, err := r.Get(ctx, ref)
	if err != nil {
		return nil, err
	}

	if service.IsCompleted() {
		logger.Debug("service %s (ref %s) already completed, performing again", service.ServiceID, ref)
	}
	for _, status := range service.Perform() {
		logger.Debug("service %s (%s) -> %s", service.ServiceID, service.Kind, status)
	}
	service.UpdatedAt = r.now()

	if err := r.store.Update(ctx, *service); err != nil {
		return nil, fmt.Errorf("updating service %s: %w", service.ServiceID, err)
	}
	return service, nil
}

// Services returns the user's records in creation order.
func (r *ServiceRegistry) Services(ctx context.Context, userID string) ([]domain.Service, error) {
	if r.store == nil {
		return nil, domain.ErrNotImplemented
	}
	services, err := r.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services, nil
}

// Users returns every user with a history, in order of first creation.
func (r *ServiceRegistry) Users(ctx context.Context) ([]string, error) {
	if r.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return r.store.Users(ctx)
}

// Close tears down the registry, releasing every record for every user.
func (r *ServiceRegistry) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}
