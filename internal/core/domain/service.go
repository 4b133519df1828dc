package domain

import (
	"strings"
	"time"
)

// PrefixLen is the number of leading characters of a service ID that select
// its kind.
const PrefixLen = 2

// ServiceKind identifies one of the fixed home-service variants.
type ServiceKind string

// Available service kinds.
const (
	// KindCarpentry covers carpentry work. Service IDs start with "CP".
	KindCarpentry ServiceKind = "CARPENTRY"

	// KindElectrician covers electrical work. Service IDs start with "EL".
	KindElectrician ServiceKind = "ELECTRICIAN"

	// KindCleaning covers cleaning. Service IDs start with "CL".
	KindCleaning ServiceKind = "CLEANING"

	// KindPlumbing covers plumbing work. Service IDs start with "PL".
	KindPlumbing ServiceKind = "PLUMBING"
)

// AllKinds returns every service kind in catalogue order.
func AllKinds() []ServiceKind {
	return []ServiceKind{KindCarpentry, KindElectrician, KindCleaning, KindPlumbing}
}

// IsValid returns true if the kind is recognised.
func (k ServiceKind) IsValid() bool {
	switch k {
	case KindCarpentry, KindElectrician, KindCleaning, KindPlumbing:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ServiceKind) String() string {
	return string(k)
}

// Prefix returns the service ID prefix that selects this kind.
func (k ServiceKind) Prefix() string {
	switch k {
	case KindCarpentry:
		return "CP"
	case KindElectrician:
		return "EL"
	case KindCleaning:
		return "CL"
	case KindPlumbing:
		return "PL"
	default:
		return ""
	}
}

// Price returns the fixed price charged for this kind.
func (k ServiceKind) Price() float64 {
	switch k {
	case KindCarpentry:
		return 500.0
	case KindElectrician:
		return 400.0
	case KindCleaning:
		return 200.0
	case KindPlumbing:
		return 300.0
	default:
		return 0
	}
}

// Description returns a human-readable description of the kind.
func (k ServiceKind) Description() string {
	switch k {
	case KindCarpentry:
		return "Carpentry (furniture, fittings, woodwork)"
	case KindElectrician:
		return "Electrician (wiring, sockets, lighting)"
	case KindCleaning:
		return "Cleaning (home and deep cleaning)"
	case KindPlumbing:
		return "Plumbing (pipes, taps, drainage)"
	default:
		return unknownDescription
	}
}

// KindForPrefix returns the kind selected by a two-character prefix.
func KindForPrefix(prefix string) (ServiceKind, bool) {
	for _, k := range AllKinds() {
		if k.Prefix() == prefix {
			return k, true
		}
	}
	return "", false
}

// ParseServiceKind parses a kind name case-insensitively.
func ParseServiceKind(s string) (ServiceKind, error) {
	k := ServiceKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrUnknownServiceType
	}
	return k, nil
}

// ServiceStatus is the lifecycle state of a service.
type ServiceStatus string

// Service lifecycle states.
const (
	StatusPending    ServiceStatus = "PENDING"
	StatusInProgress ServiceStatus = "IN_PROGRESS"
	StatusCompleted  ServiceStatus = "COMPLETED"
)

// IsValid returns true if the status is recognised.
func (s ServiceStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ServiceStatus) String() string {
	return string(s)
}

// Service is one requested unit of home-service work owned by a user.
type Service struct {
	// Ref is the registry-assigned handle for this record.
	// Unlike ServiceID it is unique per creation.
	Ref string

	// ServiceID is the caller-supplied identifier. Its prefix selects Kind.
	ServiceID string

	// UserID identifies the owner.
	UserID string

	// Kind is fixed at creation.
	Kind ServiceKind

	// Price is the fixed price of Kind.
	Price float64

	// Status is the current lifecycle state.
	Status ServiceStatus

	// CreatedAt is when the registry created the record.
	CreatedAt time.Time

	// UpdatedAt is when the record was last performed or created.
	UpdatedAt time.Time
}

// NewService builds a pending service of the given kind.
func NewService(kind ServiceKind, serviceID, userID string) Service {
	return Service{
		ServiceID: serviceID,
		UserID:    userID,
		Kind:      kind,
		Price:     kind.Price(),
		Status:    StatusPending,
	}
}

// Perform carries the service through IN_PROGRESS to COMPLETED.
// Repeated calls pass through the same states again.
// It returns the states visited, in order.
func (s *Service) Perform() []ServiceStatus {
	visited := make([]ServiceStatus, 0, 2)

	s.Status = StatusInProgress
	visited = append(visited, s.Status)

	// No work is modelled between the two states.
	s.Status = StatusCompleted
	visited = append(visited, s.Status)

	return visited
}

// GetServiceID returns the caller-supplied service identifier.
func (s *Service) GetServiceID() string { return s.ServiceID }

// GetUserID returns the owning user.
func (s *Service) GetUserID() string { return s.UserID }

// GetStatus returns the current status.
func (s *Service) GetStatus() ServiceStatus { return s.Status }

// GetPrice returns the fixed price.
func (s *Service) GetPrice() float64 { return s.Price }

// IsCompleted returns true once the service has been performed.
func (s *Service) IsCompleted() bool {
	return s.Status == StatusCompleted
}
