package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/servicehub/internal/core/domain"
	"github.com/custodia-labs/servicehub/internal/core/ports/driven"
)

// serviceStore implements driven.ServiceStore.
type serviceStore struct {
	store *Store
}

var _ driven.ServiceStore = (*serviceStore)(nil)

const serviceColumns = "ref, service_id, user_id, kind, price, status, created_at, updated_at"

// Append adds a record to the end of its user's history.
func (s *serviceStore) Append(ctx context.Context, service domain.Service) error {
	if service.Ref == "" {
		return domain.ErrInvalidInput
	}

	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO services (`+serviceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ref) DO NOTHING
	`, service.Ref, service.ServiceID, service.UserID, service.Kind.String(),
		service.Price, service.Status.String(), service.CreatedAt, service.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting service: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("inserting service: %w", err)
	}
	if n == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

// Get retrieves a record by its Ref.
func (s *serviceStore) Get(ctx context.Context, ref string) (*domain.Service, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+serviceColumns+" FROM services WHERE ref = ?", ref)

	service, err := scanService(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return service, nil
}

// Update replaces the status and update time of an existing record.
func (s *serviceStore) Update(ctx context.Context, service domain.Service) error {
	res, err := s.store.db.ExecContext(ctx,
		"UPDATE services SET status = ?, updated_at = ? WHERE ref = ?",
		service.Status.String(), service.UpdatedAt, service.Ref)
	if err != nil {
		return fmt.Errorf("updating service: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating service: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser returns a user's records in insertion order.
func (s *serviceStore) ListByUser(ctx context.Context, userID string) ([]domain.Service, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+serviceColumns+" FROM services WHERE user_id = ? ORDER BY seq", userID)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *service)
	}
	return services, rows.Err()
}

// Users returns every user with at least one record, in order of first record.
func (s *serviceStore) Users(ctx context.Context) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT user_id FROM services GROUP BY user_id ORDER BY MIN(seq)")
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	users := []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, userID)
	}
	return users, rows.Err()
}

// Close closes the underlying database.
func (s *serviceStore) Close() error {
	return s.store.Close()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service
	var kind, status string
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&service.Ref, &service.ServiceID, &service.UserID, &kind,
		&service.Price, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning service: %w", err)
	}

	parsedKind, err := domain.ParseServiceKind(kind)
	if err != nil {
		return nil, fmt.Errorf("service %s has kind %q: %w", service.Ref, kind, err)
	}
	service.Kind = parsedKind

	service.Status = domain.ServiceStatus(status)
	if !service.Status.IsValid() {
		return nil, fmt.Errorf("service %s has status %q: %w", service.Ref, status, domain.ErrInvalidInput)
	}

	if createdAt.Valid {
		service.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		service.UpdatedAt = updatedAt.Time
	}
	return &service, nil
}
