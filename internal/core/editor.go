// internal/core/editor.go
package core

import (
	"github.com/juanjux/neme/internal/buffer"
	"github.com/juanjux/neme/internal/config"
	"github.com/juanjux/neme/internal/core/clipboard"
	"github.com/juanjux/neme/internal/core/find"
	"github.com/juanjux/neme/internal/core/history"
	"github.com/juanjux/neme/internal/event"
	"github.com/juanjux/neme/internal/types"
)

// Editor owns the buffer, the cursor/viewport state and the per-concern
// managers (history, clipboard, find). Mode decisions live in the mode
// handler; the editor only enforces the resulting read-only state.
type Editor struct {
	buffer     buffer.Buffer
	Cursor     types.Position
	ViewportY  int // Top visible line index (0-based)
	ViewportX  int // Leftmost visible *visual* column (0-based) - Horizontal scroll
	viewWidth  int // Cached terminal width
	viewHeight int // Cached terminal height (excluding status bar)
	ScrollOff  int // Number of lines to keep visible above/below cursor

	readOnly      bool
	writeOverride int // >0 while an EditScope is open
	caretStyle    types.CaretStyle
	tabWidth      int

	// Selection state
	selectionMode  types.SelectionMode
	selectionStart types.Position // Anchor point of the selection
	selectionEnd   types.Position // Other end, follows the cursor

	eventManager     *event.Manager
	historyManager   *history.Manager
	clipboardManager *clipboard.Manager
	findManager      *find.Manager
}

// NewEditor creates a new Editor instance with a given buffer.
func NewEditor(buf buffer.Buffer) *Editor {
	e := &Editor{
		buffer:         buf,
		Cursor:         types.Position{Line: 0, Col: 0},
		ScrollOff:      config.DefaultScrollOff,
		tabWidth:       config.DefaultTabWidth,
		readOnly:       true, // Movement mode is the initial mode
		caretStyle:     types.CaretBlock,
		selectionMode:  types.SelectionDisabled,
		selectionStart: types.Position{Line: -1, Col: -1},
		selectionEnd:   types.Position{Line: -1, Col: -1},
	}
	e.historyManager = history.NewManager(e, 0)
	e.clipboardManager = clipboard.NewManager(e)
	e.findManager = find.NewManager(e)
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager (may be nil in tests).
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetHistoryManager returns the undo/redo manager.
func (e *Editor) GetHistoryManager() *history.Manager {
	return e.historyManager
}

// GetClipboardManager returns the yank/cut/paste manager.
func (e *Editor) GetClipboardManager() *clipboard.Manager {
	return e.clipboardManager
}

// GetFindManager returns the char-find and word-search manager.
func (e *Editor) GetFindManager() *find.Manager {
	return e.findManager
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.Cursor
}

// SetCursor sets the current cursor position, clamped into the buffer.
func (e *Editor) SetCursor(pos types.Position) {
	e.Cursor = pos
	e.MoveCursor(0, 0) // MoveCursor handles clamping and scrolling
}

// SetReadOnly switches the buffer's writability. Called by the mode
// handler when modes change.
func (e *Editor) SetReadOnly(ro bool) {
	e.readOnly = ro
}

// IsReadOnly reports the effective writability, honoring open edit scopes.
func (e *Editor) IsReadOnly() bool {
	return e.readOnly && e.writeOverride == 0
}

// SetCaretStyle records the requested cursor shape for the TUI.
func (e *Editor) SetCaretStyle(style types.CaretStyle) {
	e.caretStyle = style
}

// CaretStyle returns the requested cursor shape.
func (e *Editor) CaretStyle() types.CaretStyle {
	return e.caretStyle
}

// SetTabWidth sets the width used by indent/unindent and drawing.
func (e *Editor) SetTabWidth(w int) {
	if w > 0 {
		e.tabWidth = w
	}
}

// TabWidth returns the configured tab width.
func (e *Editor) TabWidth() int {
	return e.tabWidth
}

// SetViewSize updates the cached view dimensions. Called on resize or
// before drawing.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	if height > config.StatusBarHeight {
		e.viewHeight = height - config.StatusBarHeight
	} else {
		e.viewHeight = 0 // No space to draw buffer
	}

	// Ensure scrolloff isn't larger than half the view height
	if e.ScrollOff*2 >= e.viewHeight && e.viewHeight > 0 {
		e.ScrollOff = (e.viewHeight - 1) / 2
	} else if e.viewHeight <= 0 {
		e.ScrollOff = 0
	}

	e.ScrollToCursor() // Ensure cursor is visible after resize
}

// GetViewport returns the viewport origin (top line, left visual column).
func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// SaveBuffer saves the buffer to its file path.
func (e *Editor) SaveBuffer() error {
	if err := e.buffer.Save(""); err != nil {
		return err
	}
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferSaved,
			event.BufferSavedData{FilePath: e.buffer.FilePath()})
	}
	return nil
}

// Undo reverts the last transaction. Returns false when there is nothing
// to undo.
func (e *Editor) Undo() (bool, error) {
	return e.historyManager.Undo()
}

// Redo reapplies the last undone transaction.
func (e *Editor) Redo() (bool, error) {
	return e.historyManager.Redo()
}
