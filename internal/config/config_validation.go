// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Defaults must already be applied.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Catalog.RequestTimeout < 0 {
		return ErrInvalidCatalogConfigs
	}
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}
