package app

import (
	"github.com/juanjux/neme/internal/tui"
	"github.com/juanjux/neme/internal/types"
)

// drawEditor clears the screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, a.activeTheme)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, a.editor)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetEditorMode(a.modeHandler.CurrentMode().String())
	a.statusBar.SetPendingCount(a.modeHandler.PendingCount())

	// Keep the command line visible while it is being typed.
	if a.modeHandler.CurrentMode() == types.ModeCommand {
		a.statusBar.SetTemporaryMessage(">%s", a.modeHandler.CommandBuffer())
	}
}
