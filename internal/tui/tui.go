// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/juanjux/neme/internal/theme"
)

// TUI wraps the tcell screen. Drawing helpers live in drawing.go; the app
// owns the event loop and calls PollEvent from its own goroutine.
type TUI struct {
	screen tcell.Screen
}

// New initializes the terminal screen, painting it with the active
// theme's default style so resize gaps don't flash unstyled cells.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize screen: %w", err)
	}
	s.SetStyle(theme.GetCurrentTheme().GetStyle("Default"))
	return &TUI{screen: s}, nil
}

// Close restores the terminal. Safe to call on a partially built TUI.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent blocks until the next terminal event.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Clear wipes the back buffer.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show flushes pending changes to the terminal.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync forces a full repaint, needed after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the terminal dimensions in cells.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen exposes the underlying screen for the drawing code.
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
