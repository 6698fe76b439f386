package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/models"
)

// spySyncService counts Sync calls.
type spySyncService struct {
	calls atomic.Int64
	err   error
}

func (s *spySyncService) Sync(_ context.Context) (models.CatalogSyncResult, error) {
	s.calls.Add(1)
	return models.CatalogSyncResult{}, s.err
}

func (s *spySyncService) Search(_ context.Context, _ string, _ int) ([]models.MicroApp, error) {
	return nil, nil
}

func TestNewCatalogSyncJob_ReturnsInterface(t *testing.T) {
	job := NewCatalogSyncJob(&spySyncService{}, logger.Nop())
	require.NotNil(t, job)
}

func TestCatalogSyncJob_Start_CallsSync(t *testing.T) {
	spy := &spySyncService{}
	job := NewCatalogSyncJob(spy, logger.Nop())

	// 10ms interval: roughly five ticks in 55ms
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Sync called %d times", got)
}

func TestCatalogSyncJob_Start_SyncErrorsDoNotStopJob(t *testing.T) {
	spy := &spySyncService{err: errors.New("catalog unreachable")}
	job := NewCatalogSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestCatalogSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewCatalogSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls after Stop")
}

func TestCatalogSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewCatalogSyncJob(&spySyncService{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestCatalogSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewCatalogSyncJob(&spySyncService{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestCatalogSyncJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spySyncService{}
		job := NewCatalogSyncJob(spy, logger.Nop())

		// falls back to one hour: no ticks within 20ms
		job.Start(context.Background(), interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Equal(t, int64(0), spy.calls.Load(), "interval %s", interval)
	}
}

func TestCatalogSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spySyncService{}
	job := NewCatalogSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	callsAfterCancel := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterCancel, spy.calls.Load())

	job.Stop()
}

func TestCatalogSyncJob_RestartReplacesRunningJob(t *testing.T) {
	first := &spySyncService{}
	job := NewCatalogSyncJob(first, logger.Nop()).(*catalogSyncJob)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	// only one goroutine ticks after restart
	assert.LessOrEqual(t, first.calls.Load(), int64(4))
}
