// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote tweaks catalog.
//
// The primary abstraction is [CatalogAdapter], which decouples the service
// layer from the HTTP API. [NewHTTPCatalogAdapter] is the resty based
// implementation.
//
// Error values defined in errors.go classify every failure so callers can use
// [errors.Is]: [ErrNotFound] for 404, [ErrParse] for bodies that do not match
// the expected shape, [ErrTransport] for connectivity problems and [ErrHTTP]
// for any other non-success status.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-proton-tweaks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_adapter_mock.go -package=mock

// CatalogAdapter performs single-shot typed requests against the catalog API.
// Implementations do not retry or cache.
type CatalogAdapter interface {
	// AppsList fetches the catalog index (apps.json).
	AppsList(ctx context.Context) (models.AppsList, error)

	// App fetches the tweak definition of a single application ({id}.json).
	// Returns [ErrNotFound] (wrapped) for an unknown id.
	App(ctx context.Context, id string) (models.App, error)
}
