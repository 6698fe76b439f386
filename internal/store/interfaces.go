// Package store persists the local catalog index used for offline search and
// change detection. The index is a caller-side convenience; tweak resolution
// never reads from it.
package store

import (
	"context"

	"github.com/MKhiriev/go-proton-tweaks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_repository_mock.go -package=mock

// CatalogRepository stores the most recent catalog index and the history of
// synchronisation snapshots.
type CatalogRepository interface {
	// LastSnapshot returns the most recently recorded snapshot, or
	// [ErrNoSnapshot] if the index was never synchronised.
	LastSnapshot(ctx context.Context) (models.CatalogSnapshot, error)

	// ReplaceIndex atomically replaces all indexed apps with apps and records
	// snapshot.
	ReplaceIndex(ctx context.Context, snapshot models.CatalogSnapshot, apps []models.MicroApp) error

	// SearchApps returns up to limit indexed apps whose id equals term or
	// whose lower-cased name contains the lower-cased term, ordered by name.
	SearchApps(ctx context.Context, term string, limit uint64) ([]models.MicroApp, error)
}
