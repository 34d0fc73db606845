// Package clipboard implements the yank/cut/paste register, optionally
// bridged to the system clipboard.
package clipboard

import (
	"bytes"
	"fmt"

	systemclip "github.com/atotto/clipboard"

	"github.com/juanjux/neme/internal/buffer"
	"github.com/juanjux/neme/internal/core/history"
	"github.com/juanjux/neme/internal/event"
	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/types"
)

// EditorInterface defines methods needed from the editor.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	SetCursor(pos types.Position)
	GetSelection() (start types.Position, end types.Position, ok bool)
	GetSelectionMode() types.SelectionMode
	SelectedText() ([]byte, bool)
	ClearSelection()
	GetEventManager() *event.Manager
	GetHistoryManager() *history.Manager
	ScrollToCursor()
}

// Manager handles clipboard operations.
type Manager struct {
	editor    EditorInterface
	register  []byte
	linewise  bool // Register holds whole lines
	useSystem bool
}

// NewManager creates a new clipboard manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{editor: editor}
}

// SetUseSystem toggles the system clipboard bridge.
func (m *Manager) SetUseSystem(use bool) {
	m.useSystem = use
}

// SetRegister stores text directly, used by cut operations.
func (m *Manager) SetRegister(text []byte, linewise bool) {
	m.register = text
	m.linewise = linewise
	m.syncToSystem()
}

// syncToSystem mirrors the register into the system clipboard when enabled.
func (m *Manager) syncToSystem() {
	if !m.useSystem || len(m.register) == 0 {
		return
	}
	if err := systemclip.WriteAll(string(m.register)); err != nil {
		logger.Warnf("ClipboardManager: system clipboard write failed: %v", err)
	}
}

// CopySelection copies the active selection (mode-aware) into the register
// and clears the selection. Returns false without error when nothing is
// selected.
func (m *Manager) CopySelection() (bool, error) {
	content, ok := m.editor.SelectedText()
	if !ok {
		return false, nil
	}
	m.register = content
	m.linewise = m.editor.GetSelectionMode() == types.SelectionLine
	m.syncToSystem()
	m.editor.ClearSelection()
	logger.DebugTagf("clipboard", "Copied %d bytes (linewise=%v)", len(content), m.linewise)
	return true, nil
}

// YankLines copies n whole lines starting at the cursor line, clamped to
// the end of the buffer, including their trailing newlines.
func (m *Manager) YankLines(n int) error {
	if n <= 0 {
		n = 1
	}
	buf := m.editor.GetBuffer()
	start := m.editor.GetCursor().Line
	var out bytes.Buffer
	for i := 0; i < n && start+i < buf.LineCount(); i++ {
		line, err := buf.Line(start + i)
		if err != nil {
			return fmt.Errorf("cannot yank line %d: %w", start+i, err)
		}
		out.Write(line)
		out.WriteByte('\n')
	}
	m.register = out.Bytes()
	m.linewise = true
	m.syncToSystem()
	logger.DebugTagf("clipboard", "Yanked %d line(s), %d bytes", n, len(m.register))
	return nil
}

// content returns what Paste should insert, preferring the system
// clipboard when the bridge is enabled.
func (m *Manager) content() []byte {
	if m.useSystem {
		if text, err := systemclip.ReadAll(); err == nil && text != "" {
			return []byte(text)
		}
	}
	return m.register
}

// Paste inserts the register at the cursor, replacing the selection if one
// is active. Returns false without error when the register is empty.
func (m *Manager) Paste() (bool, error) {
	clipboardContent := m.content()
	if len(clipboardContent) == 0 {
		return false, nil
	}

	buf := m.editor.GetBuffer()
	histMgr := m.editor.GetHistoryManager()
	eventMgr := m.editor.GetEventManager()
	cursorBefore := m.editor.GetCursor()
	pastePos := cursorBefore

	// Replacing a selection is a delete plus an insert; both must land in
	// the same undo transaction.
	if start, end, ok := m.editor.GetSelection(); ok {
		if histMgr != nil {
			histMgr.BeginGroup(cursorBefore)
			defer func() { histMgr.EndGroup(m.editor.GetCursor()) }()
		}
		selectedText, err := buf.Extract(start, end)
		if err != nil {
			return false, fmt.Errorf("failed to extract selection before paste: %w", err)
		}
		m.editor.ClearSelection()
		if _, err := buf.Delete(start, end); err != nil {
			return false, fmt.Errorf("failed to delete selection before paste: %w", err)
		}
		if histMgr != nil && len(selectedText) > 0 {
			histMgr.RecordChange(history.Change{
				Type:          history.DeleteAction,
				Text:          selectedText,
				StartPosition: start,
				EndPosition:   end,
				CursorBefore:  cursorBefore,
			})
		}
		pastePos = start
	}

	endPos, err := buf.Insert(pastePos, clipboardContent)
	if err != nil {
		return false, fmt.Errorf("buffer insert failed during paste: %w", err)
	}

	if histMgr != nil {
		textCopy := make([]byte, len(clipboardContent))
		copy(textCopy, clipboardContent)
		histMgr.RecordChange(history.Change{
			Type:          history.InsertAction,
			Text:          textCopy,
			StartPosition: pastePos,
			EndPosition:   endPos,
			CursorBefore:  cursorBefore,
		})
	}

	m.editor.SetCursor(endPos)
	m.editor.ScrollToCursor()

	logger.DebugTagf("clipboard", "Pasted %d bytes", len(clipboardContent))
	if eventMgr != nil {
		eventMgr.Dispatch(event.TypeBufferModified, event.BufferModifiedData{})
	}
	return true, nil
}

// IsLinewise reports whether the register holds whole lines.
func (m *Manager) IsLinewise() bool {
	return m.linewise
}
