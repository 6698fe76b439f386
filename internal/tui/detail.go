package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-proton-tweaks/models"
)

type detailModel struct {
	app     models.MicroApp
	entry   models.App
	vendor  models.Vendor
	tweaks  models.ResolvedTweaks
	loading bool
	status  string
}

func (m detailModel) View() string {
	title := fmt.Sprintf("%s (%s)", m.app.Name, m.app.ID)
	if m.loading {
		return renderPage(title, "resolving tweaks...", "esc back")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "GPU:       %s\n", m.vendor)
	fmt.Fprintf(&b, "Tricks:    %s\n", listOrDash(m.tweaks.Tricks))
	fmt.Fprintf(&b, "Args:      %s\n", listOrDash(m.tweaks.Args))
	if len(m.tweaks.Env) == 0 {
		b.WriteString("Env:       -\n")
	} else {
		b.WriteString("Env:\n")
		for _, key := range slices.Sorted(maps.Keys(m.tweaks.Env)) {
			fmt.Fprintf(&b, "  %s=%s\n", key, m.tweaks.Env[key])
		}
	}
	fmt.Fprintf(&b, "Gamemode:  %s\n", settingValue(m.tweaks.Settings.Gamemode))
	fmt.Fprintf(&b, "Mangohud:  %s\n", settingValue(m.tweaks.Settings.Mangohud))

	if len(m.entry.Issues) > 0 {
		b.WriteString("\nIssues:\n")
		for _, issue := range m.entry.Issues {
			fmt.Fprintf(&b, "  ! %s\n", issue.Description)
			if issue.Solution != nil {
				fmt.Fprintf(&b, "    → %s\n", *issue.Solution)
			}
		}
	}

	b.WriteString("\nLaunch options:\n  " + m.tweaks.LaunchOptions())
	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage(title, b.String(), "c copy launch options  esc back  q quit")
}
