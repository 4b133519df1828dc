package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/servicehub/internal/core/domain"
	"github.com/custodia-labs/servicehub/internal/core/ports/driven"
)

// Ensure ServiceStore implements the interface.
var _ driven.ServiceStore = (*ServiceStore)(nil)

// ServiceStore is an in-memory implementation of driven.ServiceStore.
// Records live in a single arena; per-user histories hold arena indexes
// in insertion order.
type ServiceStore struct {
	mu     sync.RWMutex
	closed bool
	arena  []domain.Service
	byRef  map[string]int
	byUser map[string][]int
	users  []string
}

// NewServiceStore creates a new in-memory service store.
func NewServiceStore() *ServiceStore {
	return &ServiceStore{
		byRef:  make(map[string]int),
		byUser: make(map[string][]int),
	}
}

// Append adds a record to the end of its user's history.
func (s *ServiceStore) Append(_ context.Context, service domain.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStoreClosed
	}
	if service.Ref == "" {
		return domain.ErrInvalidInput
	}
	if _, exists := s.byRef[service.Ref]; exists {
		return domain.ErrAlreadyExists
	}

	idx := len(s.arena)
	s.arena = append(s.arena, service)
	s.byRef[service.Ref] = idx
	if _, seen := s.byUser[service.UserID]; !seen {
		s.users = append(s.users, service.UserID)
	}
	s.byUser[service.UserID] = append(s.byUser[service.UserID], idx)
	return nil
}

// Get retrieves a record by its Ref.
func (s *ServiceStore) Get(_ context.Context, ref string) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, domain.ErrStoreClosed
	}
	idx, ok := s.byRef[ref]
	if !ok {
		return nil, domain.ErrNotFound
	}
	service := s.arena[idx]
	return &service, nil
}

// Update replaces the status and update time of an existing record.
// Identity, owner, kind and price are fixed at creation and left untouched.
func (s *ServiceStore) Update(_ context.Context, service domain.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStoreClosed
	}
	idx, ok := s.byRef[service.Ref]
	if !ok {
		return domain.ErrNotFound
	}
	s.arena[idx].Status = service.Status
	s.arena[idx].UpdatedAt = service.UpdatedAt
	return nil
}

// ListByUser returns a user's records in insertion order.
func (s *ServiceStore) ListByUser(_ context.Context, userID string) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, domain.ErrStoreClosed
	}
	indexes := s.byUser[userID]
	result := make([]domain.Service, 0, len(indexes))
	for _, idx := range indexes {
		result = append(result, s.arena[idx])
	}
	return result, nil
}

// Users returns every user with at least one record, in order of first record.
func (s *ServiceStore) Users(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, domain.ErrStoreClosed
	}
	result := make([]string, len(s.users))
	copy(result, s.users)
	return result, nil
}

// Close drops every record. The store rejects all calls afterwards.
func (s *ServiceStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.arena = nil
	s.byRef = nil
	s.byUser = nil
	s.users = nil
	return nil
}

// Len returns the number of records held.
func (s *ServiceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.arena)
}
