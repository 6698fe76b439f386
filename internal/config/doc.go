// Package config provides configuration loading, merging, and validation
// facilities for the protontweaks CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// Defaults are applied to whatever is still unset after merging. The library
// packages (gpu, adapter, service) never read configuration themselves; they
// receive the typed sub-configs defined here through their constructors.
//
// The main entry point is [GetStructuredConfig].
package config
