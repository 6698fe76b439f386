package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/internal/service"
)

type catalogSyncWorker struct {
	syncService service.CatalogSyncService
	job         service.CatalogSyncJob
	interval    time.Duration
	logger      *logger.Logger
}

// NewCatalogSyncWorker returns a worker that synchronises the local catalog
// index once on start and then every interval until its context ends.
func NewCatalogSyncWorker(syncService service.CatalogSyncService, job service.CatalogSyncJob, interval time.Duration, logger *logger.Logger) Worker {
	return &catalogSyncWorker{
		syncService: syncService,
		job:         job,
		interval:    interval,
		logger:      logger,
	}
}

func (w *catalogSyncWorker) Run(ctx context.Context) error {
	result, err := w.syncService.Sync(ctx)
	if err != nil {
		return fmt.Errorf("initial catalog sync: %w", err)
	}

	w.logger.Info().
		Bool("changed", result.Changed).
		Str("sha", result.Snapshot.ShortSHA).
		Dur("interval", w.interval).
		Msg("catalog sync worker started")

	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()

	w.logger.Info().Msg("catalog sync worker stopped")
	return nil
}
