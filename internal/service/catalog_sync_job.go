package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/internal/utils"
)

// DefaultSyncInterval is used by [CatalogSyncJob.Start] for a non-positive
// interval.
const DefaultSyncInterval = time.Hour

type catalogSyncJob struct {
	syncService CatalogSyncService
	ids         *utils.UUIDGenerator
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCatalogSyncJob creates a job that calls syncService.Sync on a ticker.
// The job is idle until Start is called.
func NewCatalogSyncJob(syncService CatalogSyncService, logger *logger.Logger) CatalogSyncJob {
	return &catalogSyncJob{
		syncService: syncService,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// Start stops any previously running job, then launches a background
// goroutine that calls Sync every interval. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *catalogSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *catalogSyncJob) runOnce(ctx context.Context) {
	runID := j.ids.Generate()

	result, err := j.syncService.Sync(ctx)
	if err != nil {
		j.logger.Err(err).
			Str("run_id", runID).
			Msg("scheduled catalog sync failed")
		return
	}

	j.logger.Debug().
		Str("run_id", runID).
		Bool("changed", result.Changed).
		Str("sha", result.Snapshot.ShortSHA).
		Msg("scheduled catalog sync finished")
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. No-op when the job is not running.
func (j *catalogSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
