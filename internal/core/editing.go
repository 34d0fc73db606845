package core

import (
	"errors"
	"fmt"

	"github.com/juanjux/neme/internal/core/history"
	"github.com/juanjux/neme/internal/event"
	"github.com/juanjux/neme/internal/types"
)

// ErrReadOnlyBuffer is returned when an edit is attempted outside typing
// mode and outside any edit scope.
var ErrReadOnlyBuffer = errors.New("buffer is read-only")

// notifyModified dispatches a buffer-modified event if a manager is wired.
func (e *Editor) notifyModified() {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{})
	}
}

// insertAt is the write primitive: it inserts text, records the change for
// undo and dispatches the modified event. The cursor is not moved.
func (e *Editor) insertAt(pos types.Position, text []byte) (types.Position, error) {
	if e.IsReadOnly() {
		return types.Position{}, ErrReadOnlyBuffer
	}
	cursorBefore := e.Cursor
	end, err := e.buffer.Insert(pos, text)
	if err != nil {
		return types.Position{}, fmt.Errorf("insert at %v failed: %w", pos, err)
	}
	textCopy := make([]byte, len(text))
	copy(textCopy, text)
	e.historyManager.RecordChange(history.Change{
		Type:          history.InsertAction,
		Text:          textCopy,
		StartPosition: pos,
		EndPosition:   end,
		CursorBefore:  cursorBefore,
	})
	e.notifyModified()
	return end, nil
}

// deleteRange is the delete primitive: start inclusive, end exclusive.
func (e *Editor) deleteRange(start, end types.Position) ([]byte, error) {
	if e.IsReadOnly() {
		return nil, ErrReadOnlyBuffer
	}
	cursorBefore := e.Cursor
	start, end = types.NormalizeRange(start, end)
	removed, err := e.buffer.Delete(start, end)
	if err != nil {
		return nil, fmt.Errorf("delete %v-%v failed: %w", start, end, err)
	}
	if len(removed) == 0 {
		return nil, nil
	}
	e.historyManager.RecordChange(history.Change{
		Type:          history.DeleteAction,
		Text:          removed,
		StartPosition: start,
		EndPosition:   end,
		CursorBefore:  cursorBefore,
	})
	e.notifyModified()
	return removed, nil
}

// InsertRune inserts a single rune at the cursor and advances it.
func (e *Editor) InsertRune(r rune) error {
	end, err := e.insertAt(e.Cursor, []byte(string(r)))
	if err != nil {
		return err
	}
	e.SetCursor(end)
	return nil
}

// InsertNewline splits the current line at the cursor.
func (e *Editor) InsertNewline() error {
	end, err := e.insertAt(e.Cursor, []byte("\n"))
	if err != nil {
		return err
	}
	e.SetCursor(end)
	return nil
}

// InsertTab inserts a literal tab at the cursor.
func (e *Editor) InsertTab() error {
	return e.InsertRune('\t')
}

// prevPosition returns the position one rune before pos, crossing to the
// end of the previous line at column 0. ok is false at the buffer start.
func (e *Editor) prevPosition(pos types.Position) (types.Position, bool) {
	if pos.Col > 0 {
		return types.Position{Line: pos.Line, Col: pos.Col - 1}, true
	}
	if pos.Line > 0 {
		return types.Position{Line: pos.Line - 1, Col: e.buffer.LineRuneCount(pos.Line - 1)}, true
	}
	return types.Position{}, false
}

// DeleteBackward removes the rune before the cursor, joining lines at
// column 0. No-op at the buffer start.
func (e *Editor) DeleteBackward() error {
	prev, ok := e.prevPosition(e.Cursor)
	if !ok {
		return nil
	}
	if _, err := e.deleteRange(prev, e.Cursor); err != nil {
		return err
	}
	e.SetCursor(prev)
	return nil
}

// DeleteForward removes the rune at the cursor, joining lines at EOL.
// No-op at the buffer end.
func (e *Editor) DeleteForward() error {
	next := types.Position{Line: e.Cursor.Line, Col: e.Cursor.Col + 1}
	if e.Cursor.Col >= e.buffer.LineRuneCount(e.Cursor.Line) {
		if e.Cursor.Line >= e.buffer.LineCount()-1 {
			return nil
		}
		next = types.Position{Line: e.Cursor.Line + 1, Col: 0}
	}
	_, err := e.deleteRange(e.Cursor, next)
	return err
}
