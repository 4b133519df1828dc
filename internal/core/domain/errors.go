package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnknownServiceType indicates a service ID prefix that selects no kind.
	ErrUnknownServiceType = errors.New("no matching service type")

	// ErrStoreClosed indicates the service store has been torn down.
	ErrStoreClosed = errors.New("store closed")

	// ErrUnsupportedBackend indicates an unknown storage backend in settings.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)
