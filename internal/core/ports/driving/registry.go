package driving

import (
	"context"

	"github.com/custodia-labs/servicehub/internal/core/domain"
)

// ServiceRegistry creates service records and keeps each user's history.
type ServiceRegistry interface {
	// Create builds a service whose kind is selected by the serviceID prefix
	// and appends it to the user's history.
	// Returns domain.ErrInvalidInput for IDs too short to carry a prefix and
	// domain.ErrUnknownServiceType for unrecognised prefixes.
	Create(ctx context.Context, serviceID, userID string) (*domain.Service, error)

	// Get retrieves a record by its Ref.
	Get(ctx context.Context, ref string) (*domain.Service, error)

	// Perform carries the referenced service through to COMPLETED.
	Perform(ctx context.Context, ref string) (*domain.Service, error)

	// Services returns the user's records in creation order.
	// Users without records get an empty slice, not an error.
	Services(ctx context.Context, userID string) ([]domain.Service, error)

	// Users returns every user with a history.
	Users(ctx context.Context) ([]string, error)

	// Close tears the registry down, releasing every record it created.
	Close() error
}
