package app

import (
	"github.com/juanjux/neme/internal/event"
)

// handleCursorMovedForStatus updates the status bar cursor position.
func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false // Not consumed
}

// handleBufferModifiedForStatus refreshes the modified indicator.
func (a *App) handleBufferModifiedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

// handleBufferSavedForStatus clears the modified indicator after a save.
func (a *App) handleBufferSavedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

// handleBufferLoadedForStatus refreshes everything after a (re)load.
func (a *App) handleBufferLoadedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}

// handleModeChangedForStatus redraws so the caret shape updates promptly.
func (a *App) handleModeChangedForStatus(e event.Event) bool {
	a.requestRedraw()
	return false
}
