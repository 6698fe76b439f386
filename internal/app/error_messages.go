// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used by the
// protontweaks CLI.
//
// All Msg* constants are human-readable strings printed to the user or
// attached to log entries to describe why a command failed. Keeping them in
// one place ensures consistent wording across commands.
package app

import (
	"errors"

	"github.com/MKhiriev/go-proton-tweaks/internal/adapter"
	"github.com/MKhiriev/go-proton-tweaks/internal/config"
	"github.com/MKhiriev/go-proton-tweaks/internal/service"
	"github.com/MKhiriev/go-proton-tweaks/internal/store"
)

const (
	// MsgAppNotFound is shown when the catalog has no entry for the
	// requested app id, or a catalog file is missing.
	MsgAppNotFound = "app not found in the catalog"

	// MsgCatalogUnreachable is shown when the catalog could not be contacted
	// at all (DNS, TLS, connection refused, timeout).
	MsgCatalogUnreachable = "catalog is unreachable"

	// MsgCatalogMalformed is shown when a catalog response is not valid
	// tweak data.
	MsgCatalogMalformed = "catalog returned malformed data"

	// MsgCatalogHTTPError is shown for unexpected HTTP statuses.
	MsgCatalogHTTPError = "catalog request failed"

	// MsgInvalidAppID is shown for a blank app id.
	MsgInvalidAppID = "invalid app id"

	// MsgInvalidConfig is shown when flags, environment or the config file
	// are invalid.
	MsgInvalidConfig = "invalid configuration"

	// MsgIndexNotSynced is shown when the local catalog index is queried
	// before the first sync.
	MsgIndexNotSynced = "local catalog index is empty, run sync first"

	// MsgLocalIndexError is shown for failures of the local index database.
	MsgLocalIndexError = "local catalog index error"

	// MsgEmptySearchTerm is shown for a blank search term.
	MsgEmptySearchTerm = "search term must not be empty"

	// MsgUnexpectedError is shown for any other failure.
	MsgUnexpectedError = "unexpected error"
)

// UserMessage maps err to one of the Msg* constants by matching the package
// sentinels with [errors.Is].
func UserMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return MsgAppNotFound
	case errors.Is(err, adapter.ErrTransport):
		return MsgCatalogUnreachable
	case errors.Is(err, adapter.ErrParse):
		return MsgCatalogMalformed
	case errors.Is(err, adapter.ErrHTTP):
		return MsgCatalogHTTPError
	case errors.Is(err, adapter.ErrInvalidAppID):
		return MsgInvalidAppID
	case errors.Is(err, adapter.ErrInvalidBaseURL),
		errors.Is(err, config.ErrInvalidFlags),
		errors.Is(err, config.ErrInvalidCatalogConfigs),
		errors.Is(err, config.ErrInvalidStorageConfigs),
		errors.Is(err, config.ErrInvalidWorkerConfigs):
		return MsgInvalidConfig
	case errors.Is(err, store.ErrNoSnapshot):
		return MsgIndexNotSynced
	case errors.Is(err, store.ErrExecutingQuery),
		errors.Is(err, store.ErrExecutingStatement),
		errors.Is(err, store.ErrBeginningTransaction),
		errors.Is(err, store.ErrCommitingTransaction),
		errors.Is(err, store.ErrScanningRows):
		return MsgLocalIndexError
	case errors.Is(err, service.ErrEmptySearchTerm):
		return MsgEmptySearchTerm
	default:
		return MsgUnexpectedError
	}
}
