package domain

const unknownDescription = "Unknown"

// StorageBackend selects where the registry keeps service records.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists records in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps records for the lifetime of the process only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// IsPersistent returns true if records survive process exit.
func (b StorageBackend) IsPersistent() bool {
	return b == StorageSQLite
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (persistent, local file)"
	case StorageMemory:
		return "Memory (process lifetime only)"
	default:
		return unknownDescription
	}
}

// StorageSettings configures the service store.
type StorageSettings struct {
	// Backend selects the store implementation.
	Backend StorageBackend

	// DataDir is the directory holding the SQLite database.
	// Empty means the default under the config directory.
	DataDir string
}

// OutputSettings configures CLI rendering.
type OutputSettings struct {
	// Color enables styled output when writing to a terminal.
	Color bool
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	// Storage holds service store settings.
	Storage StorageSettings

	// Output holds rendering settings.
	Output OutputSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Output: OutputSettings{
			Color: true,
		},
	}
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageSQLite, StorageMemory}
}
