package driven

import (
	"context"

	"github.com/custodia-labs/servicehub/internal/core/domain"
)

// ServiceStore persists service records grouped by user.
// Each user's records are kept in insertion order.
type ServiceStore interface {
	// Append adds a record to the end of its user's history.
	Append(ctx context.Context, service domain.Service) error

	// Get retrieves a record by its Ref.
	// Returns domain.ErrNotFound if no record has that Ref.
	Get(ctx context.Context, ref string) (*domain.Service, error)

	// Update replaces the mutable fields (status, updated time) of an existing record.
	// Returns domain.ErrNotFound if no record has that Ref.
	Update(ctx context.Context, service domain.Service) error

	// ListByUser returns a user's records in insertion order.
	// Returns an empty slice for users without records.
	ListByUser(ctx context.Context, userID string) ([]domain.Service, error)

	// Users returns every user with at least one record, in order of first record.
	Users(ctx context.Context) ([]string, error)

	// Close releases every record held by the store.
	Close() error
}
