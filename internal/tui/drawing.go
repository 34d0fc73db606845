// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/juanjux/neme/internal/core"
	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/theme"
	"github.com/juanjux/neme/internal/types"
)

// gutterWidth computes the line-number gutter width for a buffer, zero
// when the screen is too narrow to fit one.
func gutterWidth(lineCount, screenWidth int) (width, digits int) {
	if lineCount <= 0 {
		lineCount = 1
	}
	digits = int(math.Log10(float64(lineCount))) + 1
	width = digits + 1 // One space between number and text
	if width >= screenWidth {
		return 0, digits
	}
	return width, digits
}

// DrawBuffer draws the visible portion of the buffer using the active
// theme. Selection highlighting is mode-aware (character, line or
// rectangular) through the editor's position predicate.
func DrawBuffer(tuiManager *TUI, editor *core.Editor, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}

	defaultStyle := activeTheme.GetStyle("Default")
	lineNumberStyle := activeTheme.GetStyle("LineNumber")
	selectionStyle := activeTheme.GetStyle("Selection")

	width, height := tuiManager.Size()
	viewY, viewX := editor.GetViewport()
	statusBarHeight := 1
	viewHeight := height - statusBarHeight

	if viewHeight <= 0 || width <= 0 {
		return
	}

	lines := editor.GetBuffer().Lines()
	gutter, maxDigits := gutterWidth(len(lines), width)
	textAreaWidth := width - gutter
	tabWidth := editor.TabWidth()
	if tabWidth <= 0 {
		tabWidth = 4
	}

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLineIdx := screenY + viewY

		// Fill the entire line with the theme's default style first.
		for fillX := 0; fillX < width; fillX++ {
			tuiManager.screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		// Line number gutter, current line bolded.
		if gutter > 0 && bufferLineIdx >= 0 && bufferLineIdx < len(lines) {
			currentLineStyle := lineNumberStyle
			if editor.GetCursor().Line == bufferLineIdx {
				currentLineStyle = lineNumberStyle.Bold(true)
			}
			lineNumStr := fmt.Sprintf("%*d", maxDigits, bufferLineIdx+1)
			for i, r := range lineNumStr {
				if i < gutter-1 {
					tuiManager.screen.SetContent(i, screenY, r, nil, currentLineStyle)
				}
			}
		}

		if bufferLineIdx < 0 || bufferLineIdx >= len(lines) {
			continue
		}

		lineStr := string(lines[bufferLineIdx])
		gr := uniseg.NewGraphemes(lineStr)

		currentVisualX := 0
		currentRuneIndex := 0

		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			mainRune := clusterRunes[0]
			if mainRune == '\t' {
				clusterWidth = tabWidth - (currentVisualX % tabWidth)
			}
			clusterVisualStart := currentVisualX
			clusterVisualEnd := currentVisualX + clusterWidth

			screenX := (clusterVisualStart - viewX) + gutter

			if clusterVisualEnd > viewX && clusterVisualStart < viewX+textAreaWidth {
				currentStyle := defaultStyle
				currentPos := types.Position{Line: bufferLineIdx, Col: currentRuneIndex}
				if editor.IsPositionSelected(currentPos) {
					currentStyle = selectionStyle
				}

				if screenX >= gutter && screenX < width {
					if mainRune == '\t' {
						for i := 0; i < clusterWidth && screenX+i < width; i++ {
							tuiManager.screen.SetContent(screenX+i, screenY, ' ', nil, currentStyle)
						}
					} else {
						combining := clusterRunes[1:]
						tuiManager.screen.SetContent(screenX, screenY, mainRune, combining, currentStyle)
						// Fill remaining cells for wide characters.
						for cw := 1; cw < clusterWidth; cw++ {
							fillX := screenX + cw
							if fillX < width {
								tuiManager.screen.SetContent(fillX, screenY, ' ', nil, currentStyle)
							}
						}
					}
				}
			}

			currentVisualX += clusterWidth
			currentRuneIndex += len(clusterRunes)
			if currentVisualX >= viewX+textAreaWidth {
				break
			}
		}
	}
}

// DrawCursor positions the terminal cursor and applies the caret shape
// for the active mode (block for movement, bar for typing).
func DrawCursor(tuiManager *TUI, editor *core.Editor) {
	cursor := editor.GetCursor()
	viewY, viewX := editor.GetViewport()

	width, height := tuiManager.Size()
	gutter, _ := gutterWidth(editor.GetBuffer().LineCount(), width)

	lineBytes, err := editor.GetBuffer().Line(cursor.Line)
	cursorVisualCol := 0
	if err == nil {
		cursorVisualCol = core.VisualColumn(lineBytes, cursor.Col)
	} else {
		logger.Debugf("DrawCursor: Error getting line %d: %v", cursor.Line, err)
	}

	screenX := (cursorVisualCol - viewX) + gutter
	screenY := cursor.Line - viewY

	statusBarHeight := 1
	viewHeight := height - statusBarHeight
	textAreaWidth := width - gutter

	if screenX < gutter || screenX >= width || screenY < 0 || screenY >= viewHeight || viewHeight <= 0 || textAreaWidth <= 0 {
		tuiManager.screen.HideCursor()
		return
	}

	switch editor.CaretStyle() {
	case types.CaretBar:
		tuiManager.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	default:
		tuiManager.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
	tuiManager.screen.ShowCursor(screenX, screenY)
}
