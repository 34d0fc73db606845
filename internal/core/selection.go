package core

import (
	"bytes"
	"unicode/utf8"

	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/types"
	"github.com/juanjux/neme/internal/utils"
)

// GetSelectionMode returns the active selection mode.
func (e *Editor) GetSelectionMode() types.SelectionMode {
	return e.selectionMode
}

// HasSelection returns true if a selection is active.
func (e *Editor) HasSelection() bool {
	return e.selectionMode != types.SelectionDisabled
}

// ToggleSelection enables a selection anchored at the cursor, or disables
// it when the same mode is already active. Toggling twice with the same
// mode always returns to the disabled state.
func (e *Editor) ToggleSelection(mode types.SelectionMode) {
	if mode == types.SelectionDisabled {
		e.ClearSelection()
		return
	}
	if e.selectionMode == mode {
		e.ClearSelection()
		return
	}
	if e.selectionMode == types.SelectionDisabled {
		e.selectionStart = e.Cursor
		e.selectionEnd = e.Cursor
	}
	// Switching from another active mode keeps the anchored range.
	e.selectionMode = mode
	logger.DebugTagf("selection", "Selection mode %v anchored at %v", mode, e.selectionStart)
}

// ChangeSelectionMode switches the mode of an active selection, keeping
// the range. No-op when nothing is selected.
func (e *Editor) ChangeSelectionMode(mode types.SelectionMode) {
	if e.selectionMode == types.SelectionDisabled || mode == types.SelectionDisabled {
		return
	}
	e.selectionMode = mode
}

// ClearSelection resets the selection state.
func (e *Editor) ClearSelection() {
	e.selectionMode = types.SelectionDisabled
	e.selectionStart = types.Position{Line: -1, Col: -1}
	e.selectionEnd = types.Position{Line: -1, Col: -1}
}

// GetSelection returns the normalized selection range (start <= end).
// Returns two invalid positions and false if no selection is active.
func (e *Editor) GetSelection() (start types.Position, end types.Position, ok bool) {
	if !e.HasSelection() {
		return types.Position{Line: -1, Col: -1}, types.Position{Line: -1, Col: -1}, false
	}
	start, end = types.NormalizeRange(e.selectionStart, e.selectionEnd)
	return start, end, true
}

// SelectedText extracts the selection content according to the selection
// mode: character mode takes the plain range, line mode expands to whole
// lines with a trailing newline, rectangular mode takes the column box on
// each covered line.
func (e *Editor) SelectedText() ([]byte, bool) {
	start, end, ok := e.GetSelection()
	if !ok {
		return nil, false
	}

	switch e.selectionMode {
	case types.SelectionCharacter:
		text, err := e.buffer.Extract(start, end)
		if err != nil {
			return nil, false
		}
		return text, true

	case types.SelectionLine:
		var out bytes.Buffer
		for i := start.Line; i <= end.Line; i++ {
			line, err := e.buffer.Line(i)
			if err != nil {
				return nil, false
			}
			out.Write(line)
			out.WriteByte('\n')
		}
		return out.Bytes(), true

	case types.SelectionRectangular:
		left, right := utils.Min(start.Col, end.Col), utils.Max(start.Col, end.Col)
		var out bytes.Buffer
		for i := start.Line; i <= end.Line; i++ {
			line, err := e.buffer.Line(i)
			if err != nil {
				return nil, false
			}
			lo := utils.RuneIndexToByteOffset(line, left)
			hi := utils.RuneIndexToByteOffset(line, utils.Min(right, utf8.RuneCount(line)))
			if lo < 0 {
				lo = len(line)
			}
			if hi < 0 || hi < lo {
				hi = lo
			}
			out.Write(line[lo:hi])
			if i < end.Line {
				out.WriteByte('\n')
			}
		}
		return out.Bytes(), true
	}
	return nil, false
}

// IsPositionSelected reports whether a buffer position lies inside the
// active selection, used by the TUI for highlighting.
func (e *Editor) IsPositionSelected(pos types.Position) bool {
	start, end, ok := e.GetSelection()
	if !ok {
		return false
	}

	switch e.selectionMode {
	case types.SelectionLine:
		return pos.Line >= start.Line && pos.Line <= end.Line

	case types.SelectionRectangular:
		if pos.Line < start.Line || pos.Line > end.Line {
			return false
		}
		left, right := utils.Min(start.Col, end.Col), utils.Max(start.Col, end.Col)
		return pos.Col >= left && pos.Col < right

	default: // character
		if pos.Line < start.Line || pos.Line > end.Line {
			return false
		}
		if pos.Line == start.Line && pos.Col < start.Col {
			return false
		}
		if pos.Line == end.Line && pos.Col >= end.Col {
			return false
		}
		return true
	}
}
