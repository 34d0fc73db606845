package core

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/motion"
	"github.com/juanjux/neme/internal/types"
)

// MoveCursor moves the cursor AND adjusts the viewport, handling line wraps.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	currentLine := e.Cursor.Line
	currentCol := e.Cursor.Col
	lineCount := e.buffer.LineCount()

	// Horizontal wrap-around first. Only applies to pure horizontal moves.
	if deltaLine == 0 && lineCount > 0 {
		if deltaCol > 0 { // Attempting to move Right
			maxCol := e.buffer.LineRuneCount(currentLine)
			if currentCol >= maxCol && currentLine < lineCount-1 {
				e.Cursor.Line++
				e.Cursor.Col = 0
				e.afterCursorMove()
				return
			}
		} else if deltaCol < 0 { // Attempting to move Left
			if currentCol <= 0 && currentLine > 0 {
				e.Cursor.Line--
				e.Cursor.Col = e.buffer.LineRuneCount(e.Cursor.Line)
				e.afterCursorMove()
				return
			}
		}
	}

	// Default movement and clamping
	targetLine := currentLine + deltaLine
	targetCol := currentCol + deltaCol

	if targetLine < 0 {
		targetLine = 0
	}
	if targetLine >= lineCount {
		targetLine = lineCount - 1
	}
	if targetLine < 0 {
		targetLine = 0
	}

	if targetCol < 0 {
		targetCol = 0
	}
	maxCol := e.buffer.LineRuneCount(targetLine)
	if targetCol > maxCol {
		targetCol = maxCol
	}

	e.Cursor.Line = targetLine
	e.Cursor.Col = targetCol
	e.afterCursorMove()
}

// afterCursorMove extends an active selection and keeps the cursor visible.
func (e *Editor) afterCursorMove() {
	if e.selectionMode != types.SelectionDisabled {
		e.selectionEnd = e.Cursor
	}
	e.ScrollToCursor()
}

// MoveLines moves the cursor vertically by delta lines, keeping the column
// clamped to the target line.
func (e *Editor) MoveLines(delta int) {
	e.MoveCursor(delta, 0)
}

// calculateVisualColumn computes the visual screen column width for a given
// rune index within a line. It correctly handles multi-width characters and
// grapheme clusters.
func calculateVisualColumn(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	str := string(line)
	visualWidth := 0
	currentRuneIndex := 0
	gr := uniseg.NewGraphemes(str)

	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		runes := gr.Runes()
		visualWidth += gr.Width()
		currentRuneIndex += len(runes)
	}
	return visualWidth
}

// VisualColumn is the exported helper used by the TUI for cursor placement.
func VisualColumn(line []byte, runeIndex int) int {
	return calculateVisualColumn(line, runeIndex)
}

// ScrollToCursor adjusts the viewport incorporating ScrollOff and visual width.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 || e.viewWidth <= 0 {
		return // Cannot scroll if view has no dimensions
	}

	// Effective scrolloff (cannot be larger than half the view height)
	effectiveScrollOff := e.ScrollOff
	if effectiveScrollOff*2 >= e.viewHeight {
		effectiveScrollOff = (e.viewHeight - 1) / 2
	}

	// Vertical scrolling with scrolloff
	if e.Cursor.Line < e.ViewportY+effectiveScrollOff {
		e.ViewportY = e.Cursor.Line - effectiveScrollOff
		if e.ViewportY < 0 {
			e.ViewportY = 0
		}
	} else if e.Cursor.Line >= e.ViewportY+e.viewHeight-effectiveScrollOff {
		e.ViewportY = e.Cursor.Line - e.viewHeight + 1 + effectiveScrollOff
	}

	// Horizontal scrolling based on visual column
	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	cursorVisualCol := 0
	if err == nil {
		cursorVisualCol = calculateVisualColumn(lineBytes, e.Cursor.Col)
	} else {
		logger.Debugf("ScrollToCursor: Error getting line %d: %v", e.Cursor.Line, err)
	}

	if cursorVisualCol < e.ViewportX {
		e.ViewportX = cursorVisualCol
	} else if cursorVisualCol >= e.ViewportX+e.viewWidth {
		e.ViewportX = cursorVisualCol - e.viewWidth + 1
	}

	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	if e.ViewportX < 0 {
		e.ViewportX = 0
	}
}

// PageMove moves the cursor and viewport up or down by one page height.
// 'deltaPages' is typically +1 (PageDown) or -1 (PageUp).
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		// Without a view (tests), fall back to a fixed page size.
		e.MoveLines(20 * deltaPages)
		return
	}

	targetLine := e.Cursor.Line + (e.viewHeight * deltaPages)
	lineCount := e.buffer.LineCount()
	if targetLine < 0 {
		targetLine = 0
	} else if targetLine >= lineCount {
		targetLine = lineCount - 1
	}

	e.Cursor.Line = targetLine
	e.MoveCursor(0, 0) // Clamp Col, update selection, scroll

	// Explicitly move viewport - ScrollToCursor might not jump a full page
	e.ViewportY += e.viewHeight * deltaPages
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	maxViewportY := lineCount - e.viewHeight
	if maxViewportY < 0 {
		maxViewportY = 0
	}
	if e.ViewportY > maxViewportY {
		e.ViewportY = maxViewportY
	}

	e.ScrollToCursor()
}

// WordMotion moves the cursor to a token boundary, n times. The motion
// stops silently at the buffer edges.
func (e *Editor) WordMotion(g motion.Granularity, edge motion.Edge, dir types.Direction, n int) {
	for i := 0; i < n; i++ {
		pos, ok := motion.NextBoundary(e.buffer, e.Cursor, g, edge, dir)
		if !ok {
			break
		}
		e.Cursor = pos
	}
	e.afterCursorMove()
}

// Home moves the cursor to the beginning of the current line (column 0).
func (e *Editor) Home() {
	e.Cursor.Col = 0
	e.afterCursorMove()
}

// FirstNonBlank moves the cursor to the first non-whitespace rune of the
// current line, or column 0 on blank lines.
func (e *Editor) FirstNonBlank() {
	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		e.Cursor.Col = 0
	} else {
		e.Cursor.Col = motion.FirstNonBlank(lineBytes)
	}
	e.afterCursorMove()
}

// End moves the cursor to the position just after the last rune of the
// current line.
func (e *Editor) End() {
	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		logger.Debugf("Error getting line %d for End: %v", e.Cursor.Line, err)
		e.Cursor.Col = 0
	} else {
		e.Cursor.Col = utf8.RuneCount(lineBytes)
	}
	e.afterCursorMove()
}

// EndChar moves the cursor onto the last rune of the current line, staying
// at column 0 for empty lines.
func (e *Editor) EndChar() {
	count := e.buffer.LineRuneCount(e.Cursor.Line)
	if count > 0 {
		e.Cursor.Col = count - 1
	} else {
		e.Cursor.Col = 0
	}
	e.afterCursorMove()
}

// GotoLine moves the cursor to a 1-based line number, clamped to the buffer.
func (e *Editor) GotoLine(oneBased int) {
	target := oneBased - 1
	lineCount := e.buffer.LineCount()
	if target < 0 {
		target = 0
	}
	if target >= lineCount {
		target = lineCount - 1
	}
	e.Cursor.Line = target
	e.MoveCursor(0, 0)
}

// GotoLastLine moves the cursor to the last line of the buffer.
func (e *Editor) GotoLastLine() {
	e.GotoLine(e.buffer.LineCount())
}
