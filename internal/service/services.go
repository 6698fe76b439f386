package service

import (
	"github.com/MKhiriev/go-proton-tweaks/internal/adapter"
	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/internal/store"
)

// Services groups the services used by the CLI.
type Services struct {
	TweaksService TweaksService

	// SyncService and SyncJob are nil when the services were built without
	// a local store.
	SyncService CatalogSyncService
	SyncJob     CatalogSyncJob
}

// NewServices wires the catalog-backed services. storages may be nil, in
// which case only TweaksService is available.
func NewServices(catalog adapter.CatalogAdapter, detector VendorDetector, storages *store.Storages, logger *logger.Logger) *Services {
	services := &Services{
		TweaksService: NewTweaksService(catalog, detector, logger),
	}

	if storages != nil {
		syncService := NewCatalogSyncService(catalog, storages.CatalogRepository, logger)
		services.SyncService = syncService
		services.SyncJob = NewCatalogSyncJob(syncService, logger)
	}

	return services
}
