package core

import (
	"bytes"
	"unicode/utf8"

	"github.com/juanjux/neme/internal/types"
	"github.com/juanjux/neme/internal/utils"
)

// InsertEmptyLines opens n empty lines above or below the current one and
// leaves the cursor on the last opened line. A single undo reverts all of
// them.
func (e *Editor) InsertEmptyLines(dir types.Direction, n int) error {
	if n <= 0 {
		return nil
	}
	scope := e.BeginEdit()
	defer scope.Close()

	for i := 0; i < n; i++ {
		switch dir {
		case types.DirAbove:
			if _, err := e.insertAt(types.Position{Line: e.Cursor.Line, Col: 0}, []byte("\n")); err != nil {
				return err
			}
			// The fresh empty line now sits at the cursor's line index.
			e.SetCursor(types.Position{Line: e.Cursor.Line, Col: 0})
		default: // below
			eol := types.Position{Line: e.Cursor.Line, Col: e.buffer.LineRuneCount(e.Cursor.Line)}
			if _, err := e.insertAt(eol, []byte("\n")); err != nil {
				return err
			}
			e.SetCursor(types.Position{Line: e.Cursor.Line + 1, Col: 0})
		}
	}
	return nil
}

// JoinLines merges the current line with the one below it, n times. The
// current line loses trailing whitespace, the next line is trimmed on both
// sides, and a single space separates them. An empty next line is simply
// consumed. The cursor returns to its pre-join position and one undo
// restores everything.
func (e *Editor) JoinLines(n int) error {
	if n <= 0 {
		return nil
	}
	scope := e.BeginEdit()
	defer scope.Close()

	cursorBefore := e.Cursor
	for i := 0; i < n; i++ {
		line := e.Cursor.Line
		if line >= e.buffer.LineCount()-1 {
			break
		}
		cur, err := e.buffer.Line(line)
		if err != nil {
			return err
		}
		next, err := e.buffer.Line(line + 1)
		if err != nil {
			return err
		}

		rstripped := bytes.TrimRight(cur, " \t")
		trimmedNext := bytes.TrimSpace(next)

		start := types.Position{Line: line, Col: utf8.RuneCount(rstripped)}
		end := types.Position{Line: line + 1, Col: utf8.RuneCount(next)}
		if _, err := e.deleteRange(start, end); err != nil {
			return err
		}
		if len(trimmedNext) > 0 {
			joined := trimmedNext
			if len(rstripped) > 0 {
				joined = append([]byte(" "), trimmedNext...)
			}
			if _, err := e.insertAt(start, joined); err != nil {
				return err
			}
		}
	}
	e.SetCursor(cursorBefore)
	return nil
}

// DeleteToEOL removes everything from the cursor to the end of the line.
func (e *Editor) DeleteToEOL() error {
	scope := e.BeginEdit()
	defer scope.Close()

	line := e.Cursor.Line
	end := types.Position{Line: line, Col: e.buffer.LineRuneCount(line)}
	if _, err := e.deleteRange(e.Cursor, end); err != nil {
		return err
	}
	e.SetCursor(e.Cursor)
	return nil
}

// DeleteLines removes n whole lines starting at the cursor line, clamped
// to the end of the buffer.
func (e *Editor) DeleteLines(n int) error {
	if n <= 0 {
		return nil
	}
	scope := e.BeginEdit()
	defer scope.Close()

	line := e.Cursor.Line
	lineCount := e.buffer.LineCount()
	last := utils.Min(line+n-1, lineCount-1)

	var start, end types.Position
	switch {
	case last < lineCount-1:
		start = types.Position{Line: line, Col: 0}
		end = types.Position{Line: last + 1, Col: 0}
	case line > 0:
		// Deleting through the last line: take the preceding newline too.
		start = types.Position{Line: line - 1, Col: e.buffer.LineRuneCount(line - 1)}
		end = types.Position{Line: last, Col: e.buffer.LineRuneCount(last)}
	default:
		start = types.Position{Line: 0, Col: 0}
		end = types.Position{Line: last, Col: e.buffer.LineRuneCount(last)}
	}
	if _, err := e.deleteRange(start, end); err != nil {
		return err
	}
	e.SetCursor(types.Position{Line: line, Col: e.Cursor.Col})
	return nil
}

// CutChars removes n runes at the cursor (clamped to the end of line) and
// stores them in the clipboard register, like a forward delete key that
// yanks.
func (e *Editor) CutChars(n int) error {
	if n <= 0 {
		return nil
	}
	scope := e.BeginEdit()
	defer scope.Close()

	line := e.Cursor.Line
	endCol := utils.Min(e.Cursor.Col+n, e.buffer.LineRuneCount(line))
	if endCol <= e.Cursor.Col {
		return nil
	}
	removed, err := e.deleteRange(e.Cursor, types.Position{Line: line, Col: endCol})
	if err != nil {
		return err
	}
	e.clipboardManager.SetRegister(removed, false)
	e.SetCursor(e.Cursor)
	return nil
}

// DeleteBackwardChars removes n runes before the cursor, joining lines
// when it crosses column 0.
func (e *Editor) DeleteBackwardChars(n int) error {
	if n <= 0 {
		return nil
	}
	scope := e.BeginEdit()
	defer scope.Close()

	for i := 0; i < n; i++ {
		prev, ok := e.prevPosition(e.Cursor)
		if !ok {
			break
		}
		if _, err := e.deleteRange(prev, e.Cursor); err != nil {
			return err
		}
		e.SetCursor(prev)
	}
	return nil
}

// ReplaceChars overwrites runes starting at the cursor with r, consuming
// at most the characters left on the line. With a repeat above one the
// cursor ends just past the last replaced rune, otherwise it stays put.
func (e *Editor) ReplaceChars(r rune, n int) error {
	if n <= 0 {
		n = 1
	}
	scope := e.BeginEdit()
	defer scope.Close()

	line := e.Cursor.Line
	count := utils.Min(n, e.buffer.LineRuneCount(line)-e.Cursor.Col)
	if count <= 0 {
		return nil
	}

	col := e.Cursor.Col
	text := []byte(string(r))
	for i := 0; i < count; i++ {
		if _, err := e.deleteRange(types.Position{Line: line, Col: col}, types.Position{Line: line, Col: col + 1}); err != nil {
			return err
		}
		if _, err := e.insertAt(types.Position{Line: line, Col: col}, text); err != nil {
			return err
		}
		if n > 1 {
			col++
		}
	}
	e.SetCursor(types.Position{Line: line, Col: col})
	return nil
}

// IndentLines prefixes n lines starting at the cursor line with a tab.
func (e *Editor) IndentLines(n int) error {
	if n <= 0 {
		n = 1
	}
	scope := e.BeginEdit()
	defer scope.Close()

	for i := 0; i < n; i++ {
		line := e.Cursor.Line + i
		if line >= e.buffer.LineCount() {
			break
		}
		if _, err := e.insertAt(types.Position{Line: line, Col: 0}, []byte("\t")); err != nil {
			return err
		}
	}
	e.SetCursor(e.Cursor)
	return nil
}

// UnindentLines removes one leading tab, or up to tabWidth leading spaces,
// from n lines starting at the cursor line.
func (e *Editor) UnindentLines(n int) error {
	if n <= 0 {
		n = 1
	}
	scope := e.BeginEdit()
	defer scope.Close()

	for i := 0; i < n; i++ {
		line := e.Cursor.Line + i
		if line >= e.buffer.LineCount() {
			break
		}
		lineBytes, err := e.buffer.Line(line)
		if err != nil {
			return err
		}
		remove := 0
		if len(lineBytes) > 0 && lineBytes[0] == '\t' {
			remove = 1
		} else {
			for remove < len(lineBytes) && remove < e.tabWidth && lineBytes[remove] == ' ' {
				remove++
			}
		}
		if remove == 0 {
			continue
		}
		if _, err := e.deleteRange(types.Position{Line: line, Col: 0}, types.Position{Line: line, Col: remove}); err != nil {
			return err
		}
	}
	e.SetCursor(e.Cursor)
	return nil
}

// DeleteSelection removes the active selection (character-wise range) and
// places the cursor at its start. Line and rectangular selections collapse
// to their covered range. Returns false when nothing is selected.
func (e *Editor) DeleteSelection() (bool, error) {
	start, end, ok := e.GetSelection()
	if !ok {
		return false, nil
	}
	if e.selectionMode == types.SelectionLine {
		start = types.Position{Line: start.Line, Col: 0}
		if end.Line < e.buffer.LineCount()-1 {
			end = types.Position{Line: end.Line + 1, Col: 0}
		} else {
			end = types.Position{Line: end.Line, Col: e.buffer.LineRuneCount(end.Line)}
		}
	}

	scope := e.BeginEdit()
	defer scope.Close()

	if _, err := e.deleteRange(start, end); err != nil {
		return false, err
	}
	e.ClearSelection()
	e.SetCursor(start)
	return true, nil
}
