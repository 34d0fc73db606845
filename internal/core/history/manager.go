package history

import (
	"fmt"
	"sync"

	"github.com/juanjux/neme/internal/buffer"
	"github.com/juanjux/neme/internal/event"
	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/types"
)

const DefaultMaxHistory = 100

// EditorInterface defines the methods the history manager needs from the
// editor/buffer.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	SetCursor(types.Position)
	GetEventManager() *event.Manager
	ScrollToCursor()
}

// Manager handles the undo/redo stack. Edits made inside a
// BeginGroup/EndGroup pair collapse into a single transaction.
type Manager struct {
	editor       EditorInterface
	transactions []Transaction
	currentIndex int // Index of the *next* transaction to potentially Redo
	maxHistory   int
	mutex        sync.Mutex

	pending    *Transaction
	groupDepth int
}

// NewManager creates a history manager.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:       editor,
		transactions: make([]Transaction, 0, maxHistory),
		maxHistory:   maxHistory,
	}
}

// BeginGroup opens a transaction. Nested calls are flattened into the
// outermost group.
func (m *Manager) BeginGroup(cursorBefore types.Position) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.groupDepth++
	if m.groupDepth == 1 {
		m.pending = &Transaction{CursorBefore: cursorBefore}
	}
}

// EndGroup closes the current transaction. An empty group is discarded.
func (m *Manager) EndGroup(cursorAfter types.Position) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.groupDepth == 0 {
		logger.Warnf("History: EndGroup without matching BeginGroup")
		return
	}
	m.groupDepth--
	if m.groupDepth > 0 {
		return
	}

	pending := m.pending
	m.pending = nil
	if pending == nil || len(pending.Changes) == 0 {
		return
	}
	pending.CursorAfter = cursorAfter
	m.commit(*pending)
}

// RecordChange adds a change. Inside a group it joins the pending
// transaction, otherwise it becomes a transaction of its own.
func (m *Manager) RecordChange(change Change) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.pending != nil {
		m.pending.Changes = append(m.pending.Changes, change)
		return
	}

	cursorAfter := change.EndPosition
	if change.Type == DeleteAction {
		cursorAfter = change.StartPosition
	}
	m.commit(Transaction{
		Changes:      []Change{change},
		CursorBefore: change.CursorBefore,
		CursorAfter:  cursorAfter,
	})
}

// commit appends a transaction, clearing any redo history. Caller holds
// the mutex.
func (m *Manager) commit(tx Transaction) {
	if m.currentIndex < len(m.transactions) {
		m.transactions = m.transactions[:m.currentIndex]
	}
	m.transactions = append(m.transactions, tx)
	if len(m.transactions) > m.maxHistory {
		m.transactions = m.transactions[len(m.transactions)-m.maxHistory:]
	}
	m.currentIndex = len(m.transactions)
	logger.DebugTagf("history", "Recorded transaction (%d changes). Index: %d", len(tx.Changes), m.currentIndex)
}

// Undo reverts the last transaction, applying the inverse of each change
// in reverse order.
func (m *Manager) Undo() (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex <= 0 {
		logger.DebugTagf("history", "Nothing to undo")
		return false, nil
	}

	m.currentIndex--
	tx := m.transactions[m.currentIndex]
	buf := m.editor.GetBuffer()

	for i := len(tx.Changes) - 1; i >= 0; i-- {
		change := tx.Changes[i]
		var err error
		switch change.Type {
		case InsertAction:
			// Undo an insert by deleting the inserted range.
			_, err = buf.Delete(change.StartPosition, change.EndPosition)
		case DeleteAction:
			// Undo a delete by inserting the deleted text back.
			_, err = buf.Insert(change.StartPosition, change.Text)
		}
		if err != nil {
			m.currentIndex++ // Revert index change on error
			return false, fmt.Errorf("undo failed: %w", err)
		}
	}

	m.editor.SetCursor(tx.CursorBefore)
	m.editor.ScrollToCursor()

	if eventMgr := m.editor.GetEventManager(); eventMgr != nil {
		eventMgr.Dispatch(event.TypeBufferModified, event.BufferModifiedData{})
	}
	return true, nil
}

// Redo reapplies the last undone transaction in original order.
func (m *Manager) Redo() (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex >= len(m.transactions) {
		logger.DebugTagf("history", "Nothing to redo")
		return false, nil
	}

	tx := m.transactions[m.currentIndex]
	buf := m.editor.GetBuffer()

	for _, change := range tx.Changes {
		var err error
		switch change.Type {
		case InsertAction:
			_, err = buf.Insert(change.StartPosition, change.Text)
		case DeleteAction:
			_, err = buf.Delete(change.StartPosition, change.EndPosition)
		}
		if err != nil {
			return false, fmt.Errorf("redo failed: %w", err)
		}
	}

	m.currentIndex++
	m.editor.SetCursor(tx.CursorAfter)
	m.editor.ScrollToCursor()

	if eventMgr := m.editor.GetEventManager(); eventMgr != nil {
		eventMgr.Dispatch(event.TypeBufferModified, event.BufferModifiedData{})
	}
	return true, nil
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.transactions = m.transactions[:0]
	m.currentIndex = 0
	m.pending = nil
	m.groupDepth = 0
}

// CanUndo returns true if there are transactions that can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

// CanRedo returns true if there are transactions that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.transactions)
}
