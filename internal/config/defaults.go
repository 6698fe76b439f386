package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultSyncInterval   = time.Hour
	defaultLogLevel       = "info"
	defaultVulkanInfoPath = "vulkaninfo"
)

// DefaultDSN returns the default location of the local catalog index inside
// the XDG data directory.
func DefaultDSN() string {
	return filepath.Join(xdg.DataHome, "protontweaks", "catalog.db")
}

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Catalog.RequestTimeout == 0 {
		cfg.Catalog.RequestTimeout = defaultRequestTimeout
	}
	if cfg.GPU.VulkanInfoPath == "" {
		cfg.GPU.VulkanInfoPath = defaultVulkanInfoPath
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN()
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = defaultSyncInterval
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}
