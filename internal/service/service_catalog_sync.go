package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-proton-tweaks/internal/adapter"
	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/internal/store"
	"github.com/MKhiriev/go-proton-tweaks/internal/utils"
	"github.com/MKhiriev/go-proton-tweaks/models"
)

// defaultSearchLimit caps Search results when the caller passes no limit.
const defaultSearchLimit = 20

type catalogSyncService struct {
	catalog    adapter.CatalogAdapter
	repository store.CatalogRepository
	ids        *utils.UUIDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewCatalogSyncService returns a [CatalogSyncService] that mirrors the
// catalog served by catalog into repository.
func NewCatalogSyncService(catalog adapter.CatalogAdapter, repository store.CatalogRepository, logger *logger.Logger) CatalogSyncService {
	return &catalogSyncService{
		catalog:    catalog,
		repository: repository,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *catalogSyncService) Sync(ctx context.Context) (models.CatalogSyncResult, error) {
	list, err := s.catalog.AppsList(ctx)
	if err != nil {
		return models.CatalogSyncResult{}, fmt.Errorf("fetch catalog index: %w", err)
	}

	var previous *models.CatalogSnapshot
	last, err := s.repository.LastSnapshot(ctx)
	switch {
	case errors.Is(err, store.ErrNoSnapshot):
	case err != nil:
		return models.CatalogSyncResult{}, fmt.Errorf("read last snapshot: %w", err)
	default:
		previous = &last
	}

	if previous != nil && previous.SHA == list.SHA {
		s.logger.Debug().
			Str("sha", list.SHA).
			Msg("catalog unchanged, skipping index update")
		return models.CatalogSyncResult{
			Snapshot: *previous,
			Changed:  false,
			Previous: previous,
		}, nil
	}

	snapshot := models.CatalogSnapshot{
		ID:        s.ids.Generate(),
		SHA:       list.SHA,
		ShortSHA:  list.ShortSHA,
		AppCount:  len(list.Apps),
		FetchedAt: s.now().UTC(),
	}

	if err = s.repository.ReplaceIndex(ctx, snapshot, list.Apps); err != nil {
		return models.CatalogSyncResult{}, fmt.Errorf("replace catalog index: %w", err)
	}

	s.logger.Info().
		Str("snapshot_id", snapshot.ID).
		Str("sha", snapshot.ShortSHA).
		Int("apps", snapshot.AppCount).
		Msg("catalog index updated")

	return models.CatalogSyncResult{
		Snapshot: snapshot,
		Changed:  true,
		Previous: previous,
	}, nil
}

func (s *catalogSyncService) Search(ctx context.Context, term string, limit int) ([]models.MicroApp, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	apps, err := s.repository.SearchApps(ctx, term, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("search catalog index: %w", err)
	}
	return apps, nil
}
