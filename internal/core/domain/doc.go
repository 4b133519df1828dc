// Package domain defines the core business entities for servicehub.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Service: One requested unit of work owned by a user
//   - ServiceKind: The closed set of service variants and their prices
//   - ServiceStatus: The PENDING -> IN_PROGRESS -> COMPLETED lifecycle
//   - AppSettings: Typed application configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
