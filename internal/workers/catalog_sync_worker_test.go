package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-proton-tweaks/internal/adapter"
	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/internal/mock"
	"github.com/MKhiriev/go-proton-tweaks/models"
)

func TestCatalogSyncWorker_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncService := mock.NewMockCatalogSyncService(ctrl)
	job := mock.NewMockCatalogSyncJob(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	gomock.InOrder(
		syncService.EXPECT().Sync(ctx).Return(models.CatalogSyncResult{Changed: true}, nil),
		job.EXPECT().Start(ctx, 15*time.Minute).Do(func(context.Context, time.Duration) { cancel() }),
		job.EXPECT().Stop(),
	)

	w := NewCatalogSyncWorker(syncService, job, 15*time.Minute, logger.Nop())
	require.NoError(t, w.Run(ctx))
}

func TestCatalogSyncWorker_Run_InitialSyncFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncService := mock.NewMockCatalogSyncService(ctrl)
	job := mock.NewMockCatalogSyncJob(ctrl)

	syncService.EXPECT().Sync(gomock.Any()).Return(models.CatalogSyncResult{}, adapter.ErrTransport)

	err := NewCatalogSyncWorker(syncService, job, time.Minute, logger.Nop()).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Contains(t, err.Error(), "initial catalog sync")
}
