package config

import "errors"

// Errors returned while loading or validating [StructuredConfig].
var (
	// ErrInvalidFlags indicates that the command line could not be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrInvalidCatalogConfigs indicates invalid catalog client settings
	// (for example, a negative request timeout).
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
	// ErrInvalidStorageConfigs indicates invalid local index settings
	// (for example, an in-memory DSN, which would lose the index on exit).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
