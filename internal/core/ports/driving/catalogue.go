package driving

import "github.com/custodia-labs/servicehub/internal/core/domain"

// ServiceCatalogue describes the service kinds that can be requested.
type ServiceCatalogue interface {
	// List returns all service kinds.
	List() []domain.ServiceKind

	// Resolve returns the kind selected by a service ID's prefix.
	Resolve(serviceID string) (domain.ServiceKind, error)
}
