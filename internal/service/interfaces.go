package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-proton-tweaks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VendorDetector reports the GPU vendor of the current machine. It never
// fails; undetectable hardware is [models.VendorUnknown].
type VendorDetector interface {
	Detect(ctx context.Context) models.Vendor
}

// TweaksService is the library façade: catalog lookups plus tweak resolution
// for the current machine.
type TweaksService interface {
	// AppsList fetches the catalog index.
	AppsList(ctx context.Context) (models.AppsList, error)

	// Apps fetches the catalog index and returns only its app references.
	Apps(ctx context.Context) ([]models.MicroApp, error)

	// AppIDs fetches the catalog index and returns the listed app ids.
	AppIDs(ctx context.Context) ([]string, error)

	// App fetches the tweak definition of one application.
	App(ctx context.Context, id string) (models.App, error)

	// Vendor detects the GPU vendor of the current machine.
	Vendor(ctx context.Context) models.Vendor

	// Flatten detects the GPU vendor and resolves app's tweaks for it.
	// It cannot fail; undetectable hardware yields the global layer only.
	Flatten(ctx context.Context, app models.App) models.ResolvedTweaks

	// AppTweaks fetches the application and flattens it. Catalog errors are
	// wrapped and keep their adapter sentinel.
	AppTweaks(ctx context.Context, id string) (models.ResolvedTweaks, error)
}

// CatalogSyncService mirrors the catalog index into the local store.
type CatalogSyncService interface {
	// Sync fetches the catalog index and, when its revision differs from the
	// last local snapshot, replaces the local index and records a snapshot.
	Sync(ctx context.Context) (models.CatalogSyncResult, error)

	// Search looks up apps in the local index whose id equals term or whose
	// name contains it (case-insensitive). limit <= 0 selects a default.
	Search(ctx context.Context, term string, limit int) ([]models.MicroApp, error)
}

// CatalogSyncJob periodically runs [CatalogSyncService.Sync] in the
// background.
type CatalogSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to one hour if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
