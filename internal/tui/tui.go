// Package tui implements the interactive catalog browser of the browse
// command.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/internal/service"
)

// TUI runs the catalog browser.
type TUI struct {
	tweaks service.TweaksService
	logger *logger.Logger
}

func New(tweaks service.TweaksService, logger *logger.Logger) *TUI {
	return &TUI{tweaks: tweaks, logger: logger}
}

// Browse shows the catalog until the user quits or ctx ends.
func (t *TUI) Browse(ctx context.Context) error {
	model := newBrowserModel(ctx, t.tweaks)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("catalog browser stopped")
	}
	return err
}
