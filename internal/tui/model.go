package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-proton-tweaks/internal/service"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

type browserModel struct {
	ctx           context.Context
	tweaks        service.TweaksService
	copyToClip    func(string) error
	currentScreen screen

	list         listModel
	detail       detailModel
	showError    bool
	errorOverlay errorOverlayModel
}

func newBrowserModel(ctx context.Context, tweaks service.TweaksService) browserModel {
	return browserModel{
		ctx:           ctx,
		tweaks:        tweaks,
		copyToClip:    clipboard.WriteAll,
		currentScreen: screenList,
		list:          newListModel(),
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadApps())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case appsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf("load catalog: %v", msg.err)
			return m, nil
		}
		m.list.setApps(msg.list)
		return m, nil
	case tweaksLoadedMsg:
		// replies for an app that is no longer open are dropped
		if m.currentScreen != screenDetail || msg.id != m.detail.app.ID {
			return m, nil
		}
		m.detail.loading = false
		if msg.err != nil {
			m.currentScreen = screenList
			m.showErrorf("load app %s: %v", m.detail.app.ID, msg.err)
			return m, nil
		}
		m.detail.entry = msg.app
		m.detail.vendor = msg.vendor
		m.detail.tweaks = service.Resolve(msg.app, msg.vendor)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.detail.status = "copy failed: " + msg.err.Error()
		} else {
			m.detail.status = "launch options copied"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenDetail:
		return m.updateDetail(msg)
	default:
		return m.updateList(msg)
	}
}

func (m browserModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.filtering {
			return m.updateFilter(msg)
		}

		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.filtered)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			app, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.detail = detailModel{app: app, loading: true}
			m.currentScreen = screenDetail
			return m, m.cmdLoadTweaks(app.ID)
		case key.Matches(msg, keys.filter):
			m.list.filtering = true
			return m, m.list.filter.Focus()
		case key.Matches(msg, keys.esc):
			m.list.filter.SetValue("")
			m.list.applyFilter()
		case key.Matches(msg, keys.reload):
			if m.list.loading {
				return m, nil
			}
			m.list.loading = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadApps())
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// updateFilter edits the filter until enter keeps it or esc clears it.
func (m browserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.list.filtering = false
		m.list.filter.Blur()
		return m, nil
	case key.Matches(msg, keys.esc):
		m.list.filtering = false
		m.list.filter.Blur()
		m.list.filter.SetValue("")
		m.list.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.list.filter, cmd = m.list.filter.Update(msg)
	m.list.applyFilter()
	return m, cmd
}

func (m browserModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.copy):
		if m.detail.loading {
			return m, nil
		}
		return m, m.cmdCopyToClipboard(m.detail.tweaks.LaunchOptions())
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m browserModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}

	switch m.currentScreen {
	case screenDetail:
		return appStyle.Render(m.detail.View())
	default:
		return appStyle.Render(m.list.View())
	}
}

func (m *browserModel) showErrorf(format string, args ...any) {
	m.showError = true
	m.errorOverlay.message = fmt.Sprintf(format, args...)
}

func (m browserModel) cmdLoadApps() tea.Cmd {
	ctx := m.ctx
	svc := m.tweaks
	return func() tea.Msg {
		list, err := svc.AppsList(ctx)
		return appsLoadedMsg{list: list, err: err}
	}
}

func (m browserModel) cmdLoadTweaks(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.tweaks
	return func() tea.Msg {
		app, err := svc.App(ctx, id)
		if err != nil {
			return tweaksLoadedMsg{id: id, err: err}
		}
		return tweaksLoadedMsg{id: id, app: app, vendor: svc.Vendor(ctx)}
	}
}

func (m browserModel) cmdCopyToClipboard(text string) tea.Cmd {
	copyToClip := m.copyToClip
	return func() tea.Msg {
		if err := copyToClip(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
