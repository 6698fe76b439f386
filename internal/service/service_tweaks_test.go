package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-proton-tweaks/internal/adapter"
	"github.com/MKhiriev/go-proton-tweaks/internal/config"
	"github.com/MKhiriev/go-proton-tweaks/internal/gpu"
	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/internal/mock"
	"github.com/MKhiriev/go-proton-tweaks/models"
)

func newTestTweaksService(t *testing.T) (TweaksService, *mock.MockCatalogAdapter, *mock.MockVendorDetector) {
	t.Helper()

	ctrl := gomock.NewController(t)
	catalog := mock.NewMockCatalogAdapter(ctrl)
	detector := mock.NewMockVendorDetector(ctrl)

	return NewTweaksService(catalog, detector, logger.Nop()), catalog, detector
}

func TestTweaksService_Apps(t *testing.T) {
	svc, catalog, _ := newTestTweaksService(t)
	ctx := context.Background()

	list := models.AppsList{
		SHA:      "abcdef0123",
		ShortSHA: "abcdef0",
		Apps: []models.MicroApp{
			{ID: "644930", Name: "They Are Billions"},
			{ID: "1091500", Name: "Cyberpunk 2077"},
		},
	}
	catalog.EXPECT().AppsList(ctx).Return(list, nil).Times(3)

	gotList, err := svc.AppsList(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, gotList)

	apps, err := svc.Apps(ctx)
	require.NoError(t, err)
	assert.Equal(t, list.Apps, apps)

	ids, err := svc.AppIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"644930", "1091500"}, ids)
}

func TestTweaksService_AppsError(t *testing.T) {
	svc, catalog, _ := newTestTweaksService(t)
	ctx := context.Background()

	catalog.EXPECT().AppsList(ctx).Return(models.AppsList{}, adapter.ErrTransport).Times(2)

	_, err := svc.Apps(ctx)
	assert.ErrorIs(t, err, adapter.ErrTransport)

	_, err = svc.AppIDs(ctx)
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestTweaksService_Flatten(t *testing.T) {
	svc, _, detector := newTestTweaksService(t)
	ctx := context.Background()
	app := testApp()

	detector.EXPECT().Detect(ctx).Return(models.VendorNvidia)

	assert.Equal(t, Resolve(app, models.VendorNvidia), svc.Flatten(ctx, app))
}

func TestTweaksService_Vendor(t *testing.T) {
	svc, _, detector := newTestTweaksService(t)
	ctx := context.Background()

	detector.EXPECT().Detect(ctx).Return(models.VendorAMD)

	assert.Equal(t, models.VendorAMD, svc.Vendor(ctx))
}

func TestTweaksService_AppTweaks(t *testing.T) {
	t.Run("fetch and flatten", func(t *testing.T) {
		svc, catalog, detector := newTestTweaksService(t)
		ctx := context.Background()
		app := testApp()

		catalog.EXPECT().App(ctx, app.ID).Return(app, nil)
		detector.EXPECT().Detect(ctx).Return(models.VendorUnknown)

		got, err := svc.AppTweaks(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, Resolve(app, models.VendorUnknown), got)
	})

	t.Run("catalog error keeps sentinel", func(t *testing.T) {
		svc, catalog, _ := newTestTweaksService(t)
		ctx := context.Background()

		catalog.EXPECT().App(ctx, "0").Return(models.App{}, adapter.ErrNotFound)

		_, err := svc.AppTweaks(ctx, "0")
		require.Error(t, err)
		assert.ErrorIs(t, err, adapter.ErrNotFound)
		assert.Contains(t, err.Error(), "fetch app 0")
	})

	t.Run("detector is not consulted on fetch error", func(t *testing.T) {
		svc, catalog, _ := newTestTweaksService(t)
		ctx := context.Background()

		catalog.EXPECT().App(ctx, "1").Return(models.App{}, errors.Join(adapter.ErrParse, errors.New("bad json")))

		_, err := svc.AppTweaks(ctx, "1")
		assert.ErrorIs(t, err, adapter.ErrParse)
	})
}

// TestTweaksService_EndToEnd runs a real HTTP adapter against a recorded
// catalog entry and an undetectable GPU.
func TestTweaksService_EndToEnd(t *testing.T) {
	const body = `{
		"id": "644930",
		"name": "They Are Billions",
		"tweaks": {
			"tricks": ["dotnet48"],
			"env": {},
			"args": [],
			"settings": {"gamemode": true, "mangohud": true},
			"system": {"gpu_driver": {"amd": null, "nvidia": null}}
		},
		"issues": [
			{"description": "Crashes on launch without dotnet", "solution": null}
		]
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/644930.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	catalog, err := adapter.NewHTTPCatalogAdapter(config.Catalog{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	// no adapter reported: detection collapses to VendorUnknown
	detector := gpu.NewDetector(gpu.NewStaticQuerier(""), logger.Nop())
	svc := NewTweaksService(catalog, detector, logger.Nop())
	ctx := context.Background()

	app, err := svc.App(ctx, "644930")
	require.NoError(t, err)
	require.Len(t, app.Issues, 1)
	assert.Nil(t, app.Issues[0].Solution)

	resolved, err := svc.AppTweaks(ctx, "644930")
	require.NoError(t, err)
	assert.Len(t, resolved.Tricks, 1)
	assert.Empty(t, resolved.Env)
	require.NotNil(t, resolved.Settings.Gamemode)
	assert.True(t, *resolved.Settings.Gamemode)
	require.NotNil(t, resolved.Settings.Mangohud)
	assert.True(t, *resolved.Settings.Mangohud)

	_, err = svc.AppTweaks(ctx, "does-not-exist")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
