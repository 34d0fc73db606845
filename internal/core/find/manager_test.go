package find

import (
	"testing"

	"github.com/juanjux/neme/internal/buffer"
	"github.com/juanjux/neme/internal/types"
)

// fakeEditor provides the minimal editor surface over a real buffer.
type fakeEditor struct {
	buf    buffer.Buffer
	cursor types.Position
}

func (f *fakeEditor) GetBuffer() buffer.Buffer     { return f.buf }
func (f *fakeEditor) GetCursor() types.Position    { return f.cursor }
func (f *fakeEditor) SetCursor(pos types.Position) { f.cursor = pos }
func (f *fakeEditor) ScrollToCursor()              {}

func newFakeEditor(content string) *fakeEditor {
	return &fakeEditor{buf: buffer.NewSliceBufferFromString(content)}
}

func TestFindCharInLine(t *testing.T) {
	ed := newFakeEditor("abcabca\nxyz")
	m := NewManager(ed)

	if !m.FindCharInLine('a', types.DirRight) {
		t.Fatal("expected to find 'a' to the right")
	}
	if ed.cursor != (types.Position{Line: 0, Col: 3}) {
		t.Errorf("cursor = %v, want {0 3}", ed.cursor)
	}

	// Repeat continues to the next occurrence.
	if !m.RepeatFindChar() {
		t.Fatal("expected repeat to find 'a'")
	}
	if ed.cursor != (types.Position{Line: 0, Col: 6}) {
		t.Errorf("cursor = %v, want {0 6}", ed.cursor)
	}

	// Reversed repeat goes back without flipping the stored direction.
	if !m.RepeatFindCharReversed() {
		t.Fatal("expected reversed repeat to find 'a'")
	}
	if ed.cursor != (types.Position{Line: 0, Col: 3}) {
		t.Errorf("cursor = %v, want {0 3}", ed.cursor)
	}
	if !m.RepeatFindChar() {
		t.Fatal("expected plain repeat to still search right")
	}
	if ed.cursor != (types.Position{Line: 0, Col: 6}) {
		t.Errorf("cursor = %v, want {0 6} after plain repeat", ed.cursor)
	}
}

func TestFindCharInLineMiss(t *testing.T) {
	ed := newFakeEditor("hello")
	ed.cursor = types.Position{Line: 0, Col: 2}
	m := NewManager(ed)

	if m.FindCharInLine('z', types.DirRight) {
		t.Error("expected miss for absent char")
	}
	if ed.cursor != (types.Position{Line: 0, Col: 2}) {
		t.Errorf("cursor moved on miss: %v", ed.cursor)
	}

	// The miss is still stored; a later repeat looks for it again.
	if m.RepeatFindChar() {
		t.Error("repeat of a miss should miss too")
	}
}

func TestFindCharExcludesCursor(t *testing.T) {
	ed := newFakeEditor("xax")
	ed.cursor = types.Position{Line: 0, Col: 1}
	m := NewManager(ed)

	// Cursor sits on the only 'a': neither direction may match it.
	if m.FindCharInLine('a', types.DirRight) {
		t.Error("rightward find matched the cursor column")
	}
	if m.FindCharInLine('a', types.DirLeft) {
		t.Error("leftward find matched the cursor column")
	}
}

func TestRepeatFindCharWithoutPrior(t *testing.T) {
	ed := newFakeEditor("abc")
	m := NewManager(ed)
	if m.RepeatFindChar() || m.RepeatFindCharReversed() {
		t.Error("repeat without a prior find should be a no-op")
	}
}

func TestSearchWordUnderCursor(t *testing.T) {
	ed := newFakeEditor("foo bar\nbaz foo\nfoofoo foo")
	m := NewManager(ed)

	if !m.SearchWordUnderCursor(types.DirBelow) {
		t.Fatal("expected to find next occurrence of foo")
	}
	if ed.cursor != (types.Position{Line: 1, Col: 4}) {
		t.Errorf("cursor = %v, want {1 4}", ed.cursor)
	}

	// Next repeat skips the foofoo substring and lands on the whole word.
	if !m.RepeatLastSearch(false) {
		t.Fatal("expected repeat to find foo")
	}
	if ed.cursor != (types.Position{Line: 2, Col: 7}) {
		t.Errorf("cursor = %v, want {2 7}", ed.cursor)
	}

	// Forward again wraps to the top of the buffer.
	if !m.RepeatLastSearch(false) {
		t.Fatal("expected wrapped repeat to find foo")
	}
	if ed.cursor != (types.Position{Line: 0, Col: 0}) {
		t.Errorf("cursor = %v, want {0 0} after wrap", ed.cursor)
	}
}

func TestSearchBackwardAndReverse(t *testing.T) {
	ed := newFakeEditor("foo one\ntwo foo\nfoo three")
	ed.cursor = types.Position{Line: 1, Col: 4}
	m := NewManager(ed)

	if !m.SearchWordUnderCursor(types.DirAbove) {
		t.Fatal("expected backward search to find foo")
	}
	if ed.cursor != (types.Position{Line: 0, Col: 0}) {
		t.Errorf("cursor = %v, want {0 0}", ed.cursor)
	}

	// Reversed repeat searches forward but keeps backward stored.
	if !m.RepeatLastSearch(true) {
		t.Fatal("expected reversed repeat to find foo")
	}
	if ed.cursor != (types.Position{Line: 1, Col: 4}) {
		t.Errorf("cursor = %v, want {1 4}", ed.cursor)
	}
	if !m.RepeatLastSearch(false) {
		t.Fatal("expected plain repeat to search backward again")
	}
	if ed.cursor != (types.Position{Line: 0, Col: 0}) {
		t.Errorf("cursor = %v, want {0 0} after plain repeat", ed.cursor)
	}
}

func TestSearchNotOnWord(t *testing.T) {
	ed := newFakeEditor("   \nfoo")
	m := NewManager(ed)
	if m.SearchWordUnderCursor(types.DirBelow) {
		t.Error("search on whitespace should fail")
	}
	if m.RepeatLastSearch(false) {
		t.Error("repeat without a stored word should fail")
	}
}

func TestSearchSingleOccurrenceFindsItselfOnWrap(t *testing.T) {
	ed := newFakeEditor("only here\nnothing else")
	m := NewManager(ed)
	// The sole occurrence is under the cursor; the wrapped scan comes
	// back around to it.
	if !m.SearchWordUnderCursor(types.DirBelow) {
		t.Fatal("expected wrap to land on the word itself")
	}
	if ed.cursor != (types.Position{Line: 0, Col: 0}) {
		t.Errorf("cursor = %v, want {0 0}", ed.cursor)
	}
}
