// internal/motion/word.go
package motion

import (
	"unicode"
	"unicode/utf8"

	"github.com/juanjux/neme/internal/types"
)

// Granularity selects the token classification used for word motions.
type Granularity int

const (
	// Word tokens are runs of alphanumerics/underscore, runs of a single
	// repeated symbol, or whitespace runs.
	Word Granularity = iota
	// BigWord tokens are simply non-whitespace runs and whitespace runs.
	BigWord
)

// Edge selects which side of a token a motion lands on.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// LineSource is the read-only subset of the buffer word motions need.
type LineSource interface {
	LineCount() int
	Line(index int) ([]byte, error)
}

// tokenKey identifies which token a rune belongs to. Symbols only group
// with the identical rune, so "==" is one token but ".," is two.
type tokenKey struct {
	class int
	sym   rune
}

const (
	classWhitespace = iota
	classWordChar
	classSymbol
)

// IsWordRune reports whether r belongs to the alnum/underscore word class.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func keyOf(r rune, g Granularity) tokenKey {
	if unicode.IsSpace(r) {
		return tokenKey{class: classWhitespace}
	}
	if g == BigWord || IsWordRune(r) {
		return tokenKey{class: classWordChar}
	}
	return tokenKey{class: classSymbol, sym: r}
}

// Partition splits a line into its maximal tokens for a granularity.
// Whitespace runs are kept as tokens.
func Partition(line string, g Granularity) []string {
	var parts []string
	start := 0
	var prev tokenKey
	first := true
	for i, r := range line {
		k := keyOf(r, g)
		if first {
			prev = k
			first = false
			continue
		}
		if k != prev {
			parts = append(parts, line[start:i])
			start = i
			prev = k
		}
	}
	if !first {
		parts = append(parts, line[start:])
	}
	return parts
}

// scanner walks the buffer rune by rune. The slot one past the end of a
// line holds the implicit newline, which classifies as whitespace.
type scanner struct {
	src   LineSource
	line  int
	col   int
	runes []rune
}

func newScanner(src LineSource, pos types.Position) (*scanner, bool) {
	if pos.Line < 0 || pos.Line >= src.LineCount() {
		return nil, false
	}
	s := &scanner{src: src, line: pos.Line}
	s.loadLine()
	if pos.Col < 0 {
		pos.Col = 0
	}
	if pos.Col > len(s.runes) {
		pos.Col = len(s.runes)
	}
	s.col = pos.Col
	return s, true
}

func (s *scanner) loadLine() {
	line, err := s.src.Line(s.line)
	if err != nil {
		s.runes = nil
		return
	}
	s.runes = []rune(string(line))
}

func (s *scanner) pos() types.Position {
	return types.Position{Line: s.line, Col: s.col}
}

// current returns the rune at the scanner position. The end-of-line slot
// yields '\n' except on the last line, where it is past the buffer.
func (s *scanner) current() (rune, bool) {
	if s.col < len(s.runes) {
		return s.runes[s.col], true
	}
	if s.line < s.src.LineCount()-1 {
		return '\n', true
	}
	return 0, false
}

func (s *scanner) advance() bool {
	if s.col < len(s.runes) {
		s.col++
		return true
	}
	if s.line < s.src.LineCount()-1 {
		s.line++
		s.loadLine()
		s.col = 0
		return true
	}
	return false
}

func (s *scanner) retreat() bool {
	if s.col > 0 {
		s.col--
		return true
	}
	if s.line > 0 {
		s.line--
		s.loadLine()
		s.col = len(s.runes)
		return true
	}
	return false
}

func (s *scanner) keyAt(g Granularity) (tokenKey, bool) {
	r, ok := s.current()
	if !ok {
		return tokenKey{}, false
	}
	return keyOf(r, g), true
}

// NextBoundary finds the next token boundary from pos in the given
// direction. It returns false when no further boundary exists; callers
// treat that as a no-op. Only DirLeft and DirRight are meaningful.
func NextBoundary(src LineSource, pos types.Position, g Granularity, e Edge, d types.Direction) (types.Position, bool) {
	s, ok := newScanner(src, pos)
	if !ok {
		return types.Position{}, false
	}
	switch {
	case d == types.DirRight && e == EdgeStart:
		return nextStart(s, g)
	case d == types.DirRight && e == EdgeEnd:
		return nextEnd(s, g)
	case d == types.DirLeft && e == EdgeStart:
		return prevStart(s, g)
	case d == types.DirLeft && e == EdgeEnd:
		return prevEnd(s, g)
	}
	return types.Position{}, false
}

// nextStart skips the rest of the current token, then whitespace, landing
// on the first rune of the next token.
func nextStart(s *scanner, g Granularity) (types.Position, bool) {
	k, ok := s.keyAt(g)
	if !ok {
		return types.Position{}, false
	}
	for {
		if !s.advance() {
			return types.Position{}, false
		}
		ck, cok := s.keyAt(g)
		if !cok {
			return types.Position{}, false
		}
		if ck != k {
			k = ck
			break
		}
	}
	for k.class == classWhitespace {
		if !s.advance() {
			return types.Position{}, false
		}
		var cok bool
		k, cok = s.keyAt(g)
		if !cok {
			return types.Position{}, false
		}
	}
	return s.pos(), true
}

// nextEnd lands on the last rune of the next token.
func nextEnd(s *scanner, g Granularity) (types.Position, bool) {
	if !s.advance() {
		return types.Position{}, false
	}
	k, ok := s.keyAt(g)
	if !ok {
		return types.Position{}, false
	}
	for k.class == classWhitespace {
		if !s.advance() {
			return types.Position{}, false
		}
		k, ok = s.keyAt(g)
		if !ok {
			return types.Position{}, false
		}
	}
	// Walk to the last rune of this token.
	for {
		save := *s
		if !s.advance() {
			return save.pos(), true
		}
		ck, cok := s.keyAt(g)
		if !cok || ck != k {
			return save.pos(), true
		}
	}
}

// prevStart lands on the first rune of the previous token (or of the
// current one when the cursor sits past its start).
func prevStart(s *scanner, g Granularity) (types.Position, bool) {
	if !s.retreat() {
		return types.Position{}, false
	}
	k, ok := s.keyAt(g)
	if !ok {
		return types.Position{}, false
	}
	for k.class == classWhitespace {
		if !s.retreat() {
			return types.Position{}, false
		}
		k, ok = s.keyAt(g)
		if !ok {
			return types.Position{}, false
		}
	}
	for {
		save := *s
		if !s.retreat() {
			return save.pos(), true
		}
		ck, cok := s.keyAt(g)
		if !cok || ck != k {
			return save.pos(), true
		}
	}
}

// prevEnd skips backward past the current token, then whitespace, landing
// on the last rune of the previous token.
func prevEnd(s *scanner, g Granularity) (types.Position, bool) {
	k, hadKey := s.keyAt(g)
	for {
		if !s.retreat() {
			return types.Position{}, false
		}
		ck, cok := s.keyAt(g)
		if !cok {
			return types.Position{}, false
		}
		if !hadKey || ck != k {
			k = ck
			break
		}
	}
	for k.class == classWhitespace {
		if !s.retreat() {
			return types.Position{}, false
		}
		var cok bool
		k, cok = s.keyAt(g)
		if !cok {
			return types.Position{}, false
		}
	}
	return s.pos(), true
}

// WordUnderCursor returns the alnum/underscore word containing col, used by
// the search-word-under-cursor commands. Returns false when the cursor is
// not on a word character.
func WordUnderCursor(line []byte, col int) (string, bool) {
	runes := []rune(string(line))
	if len(runes) == 0 {
		return "", false
	}
	if col >= len(runes) {
		col = len(runes) - 1
	}
	if col < 0 {
		col = 0
	}
	if !IsWordRune(runes[col]) {
		return "", false
	}
	start := col
	for start > 0 && IsWordRune(runes[start-1]) {
		start--
	}
	end := col + 1
	for end < len(runes) && IsWordRune(runes[end]) {
		end++
	}
	return string(runes[start:end]), true
}

// FirstNonBlank returns the rune column of the first non-whitespace rune,
// or 0 for blank lines.
func FirstNonBlank(line []byte) int {
	col := 0
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRune(line[i:])
		if !unicode.IsSpace(r) {
			return col
		}
		i += size
		col++
	}
	return 0
}
