package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-proton-tweaks/internal/adapter"
	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/models"
)

type tweaksService struct {
	catalog  adapter.CatalogAdapter
	detector VendorDetector

	logger *logger.Logger
}

// NewTweaksService wires a catalog adapter and a vendor detector into a
// [TweaksService]. The service holds no mutable state and is safe for
// concurrent use.
func NewTweaksService(catalog adapter.CatalogAdapter, detector VendorDetector, logger *logger.Logger) TweaksService {
	return &tweaksService{
		catalog:  catalog,
		detector: detector,
		logger:   logger,
	}
}

func (s *tweaksService) AppsList(ctx context.Context) (models.AppsList, error) {
	return s.catalog.AppsList(ctx)
}

func (s *tweaksService) Apps(ctx context.Context) ([]models.MicroApp, error) {
	list, err := s.catalog.AppsList(ctx)
	if err != nil {
		return nil, err
	}
	return list.Apps, nil
}

func (s *tweaksService) AppIDs(ctx context.Context) ([]string, error) {
	list, err := s.catalog.AppsList(ctx)
	if err != nil {
		return nil, err
	}
	return list.IDs(), nil
}

func (s *tweaksService) App(ctx context.Context, id string) (models.App, error) {
	return s.catalog.App(ctx, id)
}

func (s *tweaksService) Vendor(ctx context.Context) models.Vendor {
	return s.detector.Detect(ctx)
}

func (s *tweaksService) Flatten(ctx context.Context, app models.App) models.ResolvedTweaks {
	vendor := s.detector.Detect(ctx)

	s.logger.Debug().
		Str("app_id", app.ID).
		Str("vendor", vendor.String()).
		Msg("resolving tweaks")

	return Resolve(app, vendor)
}

func (s *tweaksService) AppTweaks(ctx context.Context, id string) (models.ResolvedTweaks, error) {
	app, err := s.catalog.App(ctx, id)
	if err != nil {
		return models.ResolvedTweaks{}, fmt.Errorf("fetch app %s: %w", id, err)
	}
	return s.Flatten(ctx, app), nil
}
