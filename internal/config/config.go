// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// protontweaks CLI. It aggregates all sub-configurations and is populated by
// merging values from an optional JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Catalog holds settings of the remote tweaks catalog API.
	Catalog Catalog `envPrefix:"CATALOG_"`
	// GPU holds settings of the GPU detector.
	GPU GPU `envPrefix:"GPU_"`
	// Storage holds settings of the local catalog index.
	Storage Storage `envPrefix:"STORAGE_"`
	// Workers holds settings of background jobs (the watch command).
	Workers Workers `envPrefix:"WORKERS_"`
	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`
	// Output holds presentation settings of command results.
	Output Output
	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
	// Args holds the positional command-line arguments left after flag
	// parsing: the command name followed by its operands.
	Args []string
}

// Catalog configures the remote catalog client.
type Catalog struct {
	// BaseURL is the versioned API root every endpoint is resolved against.
	// Empty selects the public default.
	// Env: CATALOG_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// RequestTimeout bounds a single catalog request (e.g. "30s").
	// Zero disables the client-side timeout.
	// Env: CATALOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GPU configures how the graphics adapter is queried.
type GPU struct {
	// Driver forces the adapter driver name instead of querying the system
	// (e.g. "NVIDIA").
	// Env: GPU_DRIVER
	Driver string `env:"DRIVER"`
	// VulkanInfoPath is the vulkaninfo executable used to enumerate adapters.
	// Env: GPU_VULKANINFO_PATH
	VulkanInfoPath string `env:"VULKANINFO_PATH"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite connection settings of the catalog index.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source (file path).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the watch command re-syncs the catalog index.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level written to stderr
	// (trace, debug, info, warn, error, disabled).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Output holds presentation settings. It is populated from flags only.
type Output struct {
	// JSON switches command output from styled text to indented JSON.
	JSON bool
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. args are the command-line arguments without the program
// name (os.Args[1:]).
//
// Returns a fully populated *StructuredConfig or an error if any source fails
// to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
