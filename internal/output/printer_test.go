package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-proton-tweaks/models"
)

func testList() models.AppsList {
	return models.AppsList{
		SHA:      "abcdef0123",
		ShortSHA: "abcdef0",
		Apps: []models.MicroApp{
			{ID: "644930", Name: "They Are Billions"},
			{ID: "1091500", Name: "Cyberpunk 2077"},
		},
	}
}

func testApp() models.App {
	solution := "Install dotnet48"
	return models.App{
		ID:   "644930",
		Name: "They Are Billions",
		Tweaks: models.AppTweaks{
			Tricks:   []string{"dotnet48"},
			Env:      map[string]string{"Z_VAR": "1", "A_VAR": "2"},
			Settings: models.TweakSettings{Gamemode: models.Bool(true), Mangohud: models.Bool(false)},
			System: models.System{GPUDriver: models.GPUOverrides{
				Nvidia: &models.TweakBundle{Args: []string{"-dx11"}},
			}},
		},
		Issues: []models.Issue{{Description: "Crashes on launch", Solution: &solution}},
	}
}

func TestPrinter_AppsList_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).AppsList(testList()))

	out := buf.String()
	assert.Contains(t, out, "abcdef0")
	assert.Contains(t, out, "2 apps")
	assert.Contains(t, out, "644930")
	assert.Contains(t, out, "They Are Billions")
	assert.Contains(t, out, "Cyberpunk 2077")
}

func TestPrinter_AppsList_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, true).AppsList(testList()))

	var got models.AppsList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testList(), got)
}

func TestPrinter_IDs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).IDs([]string{"644930", "1091500"}))
	assert.Equal(t, "644930\n1091500\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, false).IDs(nil))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, true).IDs([]string{"644930"}))
	assert.JSONEq(t, `["644930"]`, buf.String())
}

func TestPrinter_App_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).App(testApp()))

	out := buf.String()
	assert.Contains(t, out, "They Are Billions")
	assert.Contains(t, out, "Global tweaks")
	assert.Contains(t, out, "dotnet48")
	assert.Contains(t, out, "nvidia override")
	assert.NotContains(t, out, "amd override")
	assert.Contains(t, out, "-dx11")
	assert.Contains(t, out, "Crashes on launch")
	assert.Contains(t, out, "Install dotnet48")

	// env keys are printed in sorted order
	assert.Less(t, strings.Index(out, "A_VAR=2"), strings.Index(out, "Z_VAR=1"))
}

func TestPrinter_Resolved(t *testing.T) {
	tweaks := models.ResolvedTweaks{
		Tricks:   []string{"dotnet48"},
		Env:      map[string]string{},
		Settings: models.TweakSettings{Gamemode: models.Bool(true)},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).Resolved("644930", models.VendorUnknown, tweaks))

	out := buf.String()
	assert.Contains(t, out, "app 644930")
	assert.Contains(t, out, "gpu unknown")
	assert.Contains(t, out, "gamemode: on")
	assert.Contains(t, out, "mangohud: unset")
	assert.Contains(t, out, "env: none")
	assert.Contains(t, out, "launch options: gamemoderun %command%")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, true).Resolved("644930", models.VendorNvidia, tweaks))
	assert.JSONEq(t, `{
		"id": "644930",
		"vendor": "nvidia",
		"tweaks": {
			"tricks": ["dotnet48"],
			"env": {},
			"args": null,
			"settings": {"gamemode": true, "mangohud": null}
		}
	}`, buf.String())
}

func TestPrinter_Vendor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).Vendor(models.VendorAMD))
	assert.Contains(t, buf.String(), "GPU vendor: amd")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, true).Vendor(models.VendorAMD))
	assert.JSONEq(t, `{"vendor":"amd"}`, buf.String())
}

func TestPrinter_SyncResult(t *testing.T) {
	previous := models.CatalogSnapshot{ShortSHA: "1111111"}
	result := models.CatalogSyncResult{
		Snapshot: models.CatalogSnapshot{
			ID:        "snap-2",
			SHA:       "2222222bbbb",
			ShortSHA:  "2222222",
			AppCount:  1234,
			FetchedAt: time.Now().Add(-2 * time.Hour),
		},
		Changed:  true,
		Previous: &previous,
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).SyncResult(result))

	out := buf.String()
	assert.Contains(t, out, "updated")
	assert.Contains(t, out, "2222222")
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "1111111")

	result.Changed = false
	buf.Reset()
	require.NoError(t, NewPrinter(&buf, false).SyncResult(result))
	assert.Contains(t, buf.String(), "up to date")
	assert.NotContains(t, buf.String(), "Previous")
}

func TestPrinter_SearchResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).SearchResults("zzz", nil))
	assert.Contains(t, buf.String(), `No apps matching "zzz"`)

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, false).SearchResults("billions", testList().Apps[:1]))
	assert.Contains(t, buf.String(), "They Are Billions")
}

func TestPrinter_BuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("v0.3.0", "", "abc1234")

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).BuildInfo(info))
	assert.Contains(t, buf.String(), "Build version: v0.3.0")
	assert.Contains(t, buf.String(), "Build date: N/A")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, true).BuildInfo(info))
	assert.JSONEq(t, `{"version":"v0.3.0","date":"N/A","commit":"abc1234"}`, buf.String())
}
