package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/servicehub/internal/core/domain"
	"github.com/custodia-labs/servicehub/internal/core/ports/driving"
)

// Ensure ServiceCatalogue implements the interface.
var _ driving.ServiceCatalogue = (*ServiceCatalogue)(nil)

// ServiceCatalogue lists the service kinds and resolves service IDs to them.
type ServiceCatalogue struct {
	kinds []domain.ServiceKind
}

// NewServiceCatalogue creates a catalogue with the built-in service kinds.
func NewServiceCatalogue() *ServiceCatalogue {
	return &ServiceCatalogue{kinds: domain.AllKinds()}
}

// List returns all service kinds in catalogue order.
func (c *ServiceCatalogue) List() []domain.ServiceKind {
	result := make([]domain.ServiceKind, len(c.kinds))
	copy(result, c.kinds)
	return result
}

// Resolve returns the kind selected by the first two characters of serviceID.
// IDs shorter than the prefix are rejected rather than truncated.
func (c *ServiceCatalogue) Resolve(serviceID string) (domain.ServiceKind, error) {
	if utf8.RuneCountInString(serviceID) < domain.PrefixLen {
		return "", fmt.Errorf("service id %q shorter than %d characters: %w",
			serviceID, domain.PrefixLen, domain.ErrInvalidInput)
	}

	prefix := string([]rune(serviceID)[:domain.PrefixLen])
	kind, ok := domain.KindForPrefix(prefix)
	if !ok {
		return "", fmt.Errorf("prefix %q of service id %q: %w",
			prefix, serviceID, domain.ErrUnknownServiceType)
	}
	return kind, nil
}
