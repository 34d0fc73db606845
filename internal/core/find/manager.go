// Package find implements the in-line character find and the wrapped
// whole-buffer word search.
package find

import (
	"github.com/juanjux/neme/internal/buffer"
	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/motion"
	"github.com/juanjux/neme/internal/types"
)

// EditorInterface defines the methods the find manager needs.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	SetCursor(pos types.Position)
	ScrollToCursor()
}

// Manager remembers the last in-line char find and the last word search
// so they can be repeated and reversed.
type Manager struct {
	editor EditorInterface

	lineFindChar rune
	lineFindDir  types.Direction
	haveLineFind bool

	lastSearchWord string
	lastSearchDir  types.Direction
}

// NewManager creates a find manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{
		editor:        editor,
		lineFindDir:   types.DirRight,
		lastSearchDir: types.DirBelow,
	}
}

// FindCharInLine seeks ch on the current line from the cursor in the
// given direction, remembering the pair for later repeats. The cursor
// stays put when the char does not occur.
func (m *Manager) FindCharInLine(ch rune, dir types.Direction) bool {
	m.lineFindChar = ch
	m.lineFindDir = dir
	m.haveLineFind = true
	return m.jumpToChar(ch, dir)
}

// RepeatFindChar repeats the last in-line find in its stored direction.
func (m *Manager) RepeatFindChar() bool {
	if !m.haveLineFind {
		return false
	}
	return m.jumpToChar(m.lineFindChar, m.lineFindDir)
}

// RepeatFindCharReversed repeats the last in-line find against its stored
// direction. The stored direction is left untouched.
func (m *Manager) RepeatFindCharReversed() bool {
	if !m.haveLineFind {
		return false
	}
	return m.jumpToChar(m.lineFindChar, m.lineFindDir.Reversed())
}

// jumpToChar scans the current line, exclusive of the cursor column.
func (m *Manager) jumpToChar(ch rune, dir types.Direction) bool {
	cursor := m.editor.GetCursor()
	lineBytes, err := m.editor.GetBuffer().Line(cursor.Line)
	if err != nil {
		return false
	}
	runes := []rune(string(lineBytes))

	if dir == types.DirRight {
		for col := cursor.Col + 1; col < len(runes); col++ {
			if runes[col] == ch {
				m.editor.SetCursor(types.Position{Line: cursor.Line, Col: col})
				return true
			}
		}
	} else {
		start := cursor.Col - 1
		if start >= len(runes) {
			start = len(runes) - 1
		}
		for col := start; col >= 0; col-- {
			if runes[col] == ch {
				m.editor.SetCursor(types.Position{Line: cursor.Line, Col: col})
				return true
			}
		}
	}
	return false
}

// SearchWordUnderCursor extracts the word at the cursor and jumps to its
// next whole-word occurrence. DirBelow searches forward, DirAbove
// backward; both wrap around the buffer. Returns false when the cursor
// is not on a word or no other occurrence exists.
func (m *Manager) SearchWordUnderCursor(dir types.Direction) bool {
	cursor := m.editor.GetCursor()
	lineBytes, err := m.editor.GetBuffer().Line(cursor.Line)
	if err != nil {
		return false
	}
	word, ok := motion.WordUnderCursor(lineBytes, cursor.Col)
	if !ok {
		return false
	}
	m.lastSearchWord = word
	m.lastSearchDir = dir
	return m.searchFromCursor(word, dir)
}

// RepeatLastSearch searches the remembered word again in its remembered
// direction, or the opposite one when reversed is set. A reversed repeat
// never alters the remembered direction.
func (m *Manager) RepeatLastSearch(reversed bool) bool {
	if m.lastSearchWord == "" {
		return false
	}
	dir := m.lastSearchDir
	if reversed {
		dir = dir.Reversed()
	}
	return m.searchFromCursor(m.lastSearchWord, dir)
}

// LastSearchWord returns the remembered search word.
func (m *Manager) LastSearchWord() string {
	return m.lastSearchWord
}

func (m *Manager) searchFromCursor(word string, dir types.Direction) bool {
	pos, found := m.search(word, m.editor.GetCursor(), dir)
	if !found {
		logger.DebugTagf("find", "No other occurrence of %q", word)
		return false
	}
	m.editor.SetCursor(pos)
	m.editor.ScrollToCursor()
	return true
}

// search performs the wrapped whole-word scan. Forward starts one column
// past the cursor and ends back at the cursor column after wrapping,
// backward mirrors that.
func (m *Manager) search(word string, from types.Position, dir types.Direction) (types.Position, bool) {
	buf := m.editor.GetBuffer()
	lineCount := buf.LineCount()
	target := []rune(word)
	if len(target) == 0 || lineCount == 0 {
		return types.Position{}, false
	}

	forward := dir != types.DirAbove && dir != types.DirLeft

	for i := 0; i <= lineCount; i++ {
		var lineIdx int
		if forward {
			lineIdx = (from.Line + i) % lineCount
		} else {
			lineIdx = ((from.Line-i)%lineCount + lineCount) % lineCount
		}

		// Column bounds only apply on the cursor line: exclusive of the
		// cursor on the first pass, inclusive on the wrapped revisit.
		minCol, maxCol := -1, -1
		if forward {
			if i == 0 {
				minCol = from.Col + 1
			} else if i == lineCount {
				maxCol = from.Col
			}
		} else {
			if i == 0 {
				if from.Col == 0 {
					// Nothing before the cursor on its own line.
					continue
				}
				maxCol = from.Col - 1
			} else if i == lineCount {
				minCol = from.Col
			}
		}

		if col, ok := m.findInLine(lineIdx, target, minCol, maxCol, forward); ok {
			return types.Position{Line: lineIdx, Col: col}, true
		}
	}
	return types.Position{}, false
}

// findInLine scans one line for a whole-word match whose start column
// lies within [minCol, maxCol], -1 meaning unbounded. When forward is
// false the last such match wins.
func (m *Manager) findInLine(lineIdx int, target []rune, minCol, maxCol int, forward bool) (int, bool) {
	lineBytes, err := m.editor.GetBuffer().Line(lineIdx)
	if err != nil {
		return 0, false
	}
	runes := []rune(string(lineBytes))
	best := -1
	for col := 0; col+len(target) <= len(runes); col++ {
		if minCol >= 0 && col < minCol {
			continue
		}
		if maxCol >= 0 && col > maxCol {
			break
		}
		if !runesEqual(runes[col:col+len(target)], target) {
			continue
		}
		if col > 0 && motion.IsWordRune(runes[col-1]) {
			continue
		}
		if after := col + len(target); after < len(runes) && motion.IsWordRune(runes[after]) {
			continue
		}
		if forward {
			return col, true
		}
		best = col
	}
	if best >= 0 {
		return best, true
	}
	return 0, false
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
