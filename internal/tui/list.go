package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-proton-tweaks/models"
)

// visibleRows bounds the number of apps rendered around the cursor.
const visibleRows = 20

type listModel struct {
	apps      []models.MicroApp
	filtered  []models.MicroApp
	revision  string
	idx       int
	loading   bool
	spinner   spinner.Model
	filter    textinput.Model
	filtering bool
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	f := textinput.New()
	f.Placeholder = "name or id"
	f.Prompt = "/ "
	f.CharLimit = 64

	return listModel{spinner: s, filter: f, loading: true}
}

func (m *listModel) setApps(list models.AppsList) {
	m.apps = list.Apps
	m.revision = list.ShortSHA
	m.applyFilter()
}

// applyFilter keeps apps whose id equals the filter or whose name contains
// it, ignoring case.
func (m *listModel) applyFilter() {
	term := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if term == "" {
		m.filtered = m.apps
	} else {
		m.filtered = make([]models.MicroApp, 0, len(m.apps))
		for _, app := range m.apps {
			if app.ID == term || strings.Contains(strings.ToLower(app.Name), term) {
				m.filtered = append(m.filtered, app)
			}
		}
	}

	if m.idx >= len(m.filtered) {
		m.idx = len(m.filtered) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current() (models.MicroApp, bool) {
	if len(m.filtered) == 0 || m.idx < 0 || m.idx >= len(m.filtered) {
		return models.MicroApp{}, false
	}
	return m.filtered[m.idx], true
}

func (m listModel) View() string {
	title := "Proton Tweaks catalog"
	if m.revision != "" {
		title += " (" + m.revision + ")"
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " loading catalog...")
	case len(m.filtered) == 0:
		b.WriteString("no apps")
	default:
		start := max(0, m.idx-visibleRows/2)
		end := min(len(m.filtered), start+visibleRows)
		for i := start; i < end; i++ {
			app := m.filtered[i]
			line := fmt.Sprintf("%-10s %s", app.ID, fitText(app.Name, 60))
			if i == m.idx {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("\n%d/%d apps", len(m.filtered), len(m.apps)))
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("\n" + m.filter.View())
	}

	return renderPage(title, b.String(), "↑/↓ move  enter open  / filter  r reload  q quit")
}
