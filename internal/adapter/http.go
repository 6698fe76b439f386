package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-proton-tweaks/internal/config"
	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/internal/utils"
	"github.com/MKhiriev/go-proton-tweaks/models"
)

// DefaultBaseURL is the versioned root of the public tweaks catalog.
const DefaultBaseURL = "https://api.protontweaks.com/v4"

const appsListEndpoint = "apps.json"

type httpCatalogAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the HTTP implementation of
// [CatalogAdapter]. An empty cfg.BaseURL selects [DefaultBaseURL]; endpoints
// are resolved below the base URL's path. A zero cfg.RequestTimeout leaves
// timeouts to the caller's context.
//
// Returns [ErrInvalidBaseURL] (wrapped) if the base URL cannot be parsed or
// lacks a scheme or host.
func NewHTTPCatalogAdapter(cfg config.Catalog, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpCatalogAdapter{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultBaseURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// AppsList implements [CatalogAdapter]. It GETs <base>/apps.json.
func (h *httpCatalogAdapter) AppsList(ctx context.Context) (models.AppsList, error) {
	var list models.AppsList
	if err := h.get(ctx, appsListEndpoint, &list); err != nil {
		return models.AppsList{}, err
	}
	return list, nil
}

// App implements [CatalogAdapter]. It GETs <base>/{id}.json.
func (h *httpCatalogAdapter) App(ctx context.Context, id string) (models.App, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.App{}, ErrInvalidAppID
	}

	var app models.App
	if err := h.get(ctx, url.PathEscape(id)+".json", &app); err != nil {
		return models.App{}, err
	}
	return app, nil
}

// get performs one GET of endpoint and decodes the JSON body into out.
func (h *httpCatalogAdapter) get(ctx context.Context, endpoint string, out any) error {
	target := h.baseURL + "/" + endpoint

	h.logger.Trace().Str("url", target).Msg("requesting catalog resource")

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/" + endpoint)
	if err != nil {
		return fmt.Errorf("%w: request '%s': %w", ErrTransport, target, err)
	}
	if err = mapHTTPError(resp, target); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrParse, target, err)
	}

	return nil
}
