// Package output renders command results for the terminal, either as styled
// text or as indented JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-proton-tweaks/models"
)

// Printer writes command results to w.
type Printer struct {
	w    io.Writer
	json bool
}

// NewPrinter returns a Printer writing to w. When asJSON is set every result
// is written as one indented JSON document.
func NewPrinter(w io.Writer, asJSON bool) *Printer {
	return &Printer{w: w, json: asJSON}
}

func (p *Printer) writeJSON(v any) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (p *Printer) writeLines(lines ...string) error {
	_, err := io.WriteString(p.w, strings.Join(lines, "\n")+"\n")
	return err
}

// AppsList prints the catalog index.
func (p *Printer) AppsList(list models.AppsList) error {
	if p.json {
		return p.writeJSON(list)
	}

	lines := []string{
		titleStyle.Render("Catalog") + " " + mutedStyle.Render(fmt.Sprintf("%s · %d apps", list.ShortSHA, len(list.Apps))),
	}
	lines = append(lines, appLines(list.Apps)...)
	return p.writeLines(lines...)
}

// IDs prints one app id per line.
func (p *Printer) IDs(ids []string) error {
	if p.json {
		return p.writeJSON(ids)
	}
	if len(ids) == 0 {
		return nil
	}
	return p.writeLines(ids...)
}

// App prints one catalog entry with its raw tweak layers and issues.
func (p *Printer) App(app models.App) error {
	if p.json {
		return p.writeJSON(app)
	}

	lines := []string{titleStyle.Render(app.Name) + " " + mutedStyle.Render("("+app.ID+")")}

	lines = append(lines, "", labelStyle.Render("Global tweaks"))
	lines = append(lines, bundleLines(app.Tweaks.Base())...)

	overrides := app.Tweaks.GPUOverrides()
	for _, vendor := range []models.Vendor{models.VendorAMD, models.VendorNvidia} {
		bundle := overrides.For(vendor)
		if bundle == nil {
			continue
		}
		lines = append(lines, "", labelStyle.Render(vendor.String()+" override"))
		lines = append(lines, bundleLines(*bundle)...)
	}

	if len(app.Issues) > 0 {
		lines = append(lines, "", labelStyle.Render("Issues"))
		for _, issue := range app.Issues {
			lines = append(lines, "  "+warningStyle.Render("!")+" "+issue.Description)
			if issue.Solution != nil {
				lines = append(lines, "    "+successStyle.Render("→")+" "+*issue.Solution)
			}
		}
	}

	return p.writeLines(lines...)
}

// Resolved prints the effective tweaks of app id for vendor.
func (p *Printer) Resolved(id string, vendor models.Vendor, tweaks models.ResolvedTweaks) error {
	if p.json {
		return p.writeJSON(struct {
			ID     string                `json:"id"`
			Vendor models.Vendor         `json:"vendor"`
			Tweaks models.ResolvedTweaks `json:"tweaks"`
		}{ID: id, Vendor: vendor, Tweaks: tweaks})
	}

	header := titleStyle.Render("Resolved tweaks") + " " + mutedStyle.Render(fmt.Sprintf("app %s · gpu %s", id, vendor))
	lines := append([]string{header}, bundleLines(models.TweakBundle(tweaks))...)
	lines = append(lines, "  "+field("launch options", tweaks.LaunchOptions()))
	return p.writeLines(lines...)
}

// Vendor prints the detected GPU vendor.
func (p *Printer) Vendor(vendor models.Vendor) error {
	if p.json {
		return p.writeJSON(struct {
			Vendor models.Vendor `json:"vendor"`
		}{Vendor: vendor})
	}
	return p.writeLines(field("GPU vendor", vendor.String()))
}

// SyncResult prints the outcome of a catalog index synchronisation.
func (p *Printer) SyncResult(result models.CatalogSyncResult) error {
	if p.json {
		return p.writeJSON(result)
	}

	status := mutedStyle.Render("up to date")
	if result.Changed {
		status = successStyle.Render("updated")
	}

	lines := []string{
		field("Catalog", status),
		field("Revision", result.Snapshot.ShortSHA),
		field("Apps", humanize.Comma(int64(result.Snapshot.AppCount))),
		field("Fetched", humanize.Time(result.Snapshot.FetchedAt)),
	}
	if result.Changed && result.Previous != nil {
		lines = append(lines, field("Previous", result.Previous.ShortSHA))
	}

	return p.writeLines(boxStyle.Render(strings.Join(lines, "\n")))
}

// SearchResults prints the local index matches for term.
func (p *Printer) SearchResults(term string, apps []models.MicroApp) error {
	if p.json {
		return p.writeJSON(apps)
	}
	if len(apps) == 0 {
		return p.writeLines(mutedStyle.Render(fmt.Sprintf("No apps matching %q", term)))
	}
	return p.writeLines(appLines(apps)...)
}

// BuildInfo prints the version metadata of the binary.
func (p *Printer) BuildInfo(info models.AppBuildInfo) error {
	if p.json {
		return p.writeJSON(info)
	}
	return p.writeLines(
		field("Build version", info.BuildVersion()),
		field("Build date", info.BuildDate()),
		field("Build commit", info.BuildCommit()),
	)
}

func field(label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// appLines renders apps as an aligned id/name table.
func appLines(apps []models.MicroApp) []string {
	width := 0
	for _, app := range apps {
		width = max(width, lipgloss.Width(app.ID))
	}

	lines := make([]string, 0, len(apps))
	for _, app := range apps {
		lines = append(lines, idStyle.Width(width+2).Render(app.ID)+app.Name)
	}
	return lines
}

// bundleLines renders one tweak layer. Env keys are sorted.
func bundleLines(b models.TweakBundle) []string {
	lines := []string{
		"  " + field("tricks", listOrNone(b.Tricks)),
		"  " + field("args", listOrNone(b.Args)),
	}

	if len(b.Env) == 0 {
		lines = append(lines, "  "+field("env", mutedStyle.Render("none")))
	} else {
		lines = append(lines, "  "+labelStyle.Render("env:"))
		for _, key := range slices.Sorted(maps.Keys(b.Env)) {
			lines = append(lines, "    "+key+"="+b.Env[key])
		}
	}

	lines = append(lines,
		"  "+field("gamemode", setting(b.Settings.Gamemode)),
		"  "+field("mangohud", setting(b.Settings.Mangohud)),
	)
	return lines
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return mutedStyle.Render("none")
	}
	return strings.Join(items, " ")
}

func setting(v *bool) string {
	switch {
	case v == nil:
		return mutedStyle.Render("unset")
	case *v:
		return successStyle.Render("on")
	default:
		return warningStyle.Render("off")
	}
}
