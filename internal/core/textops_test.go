package core

import (
	"testing"

	"github.com/juanjux/neme/internal/buffer"
	"github.com/juanjux/neme/internal/types"
)

func newTestEditor(content string) *Editor {
	return NewEditor(buffer.NewSliceBufferFromString(content))
}

func bufferText(t *testing.T, e *Editor) string {
	t.Helper()
	return string(e.GetBuffer().Bytes())
}

func TestJoinLines(t *testing.T) {
	e := newTestEditor("  hello \nworld  \n")
	e.SetCursor(types.Position{Line: 0, Col: 4})

	if err := e.JoinLines(1); err != nil {
		t.Fatalf("JoinLines: %v", err)
	}
	if got, want := bufferText(t, e), "  hello world\n"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if e.Cursor != (types.Position{Line: 0, Col: 4}) {
		t.Errorf("cursor = %v, want pre-join position {0 4}", e.Cursor)
	}

	// One undo restores the original content.
	if ok, err := e.Undo(); err != nil || !ok {
		t.Fatalf("Undo: ok=%v err=%v", ok, err)
	}
	if got, want := bufferText(t, e), "  hello \nworld  \n"; got != want {
		t.Errorf("after undo buffer = %q, want %q", got, want)
	}
}

func TestJoinLinesMulti(t *testing.T) {
	e := newTestEditor("one\ntwo\nthree")
	if err := e.JoinLines(2); err != nil {
		t.Fatalf("JoinLines: %v", err)
	}
	if got, want := bufferText(t, e), "one two three"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	// Both joins revert in a single undo.
	if ok, _ := e.Undo(); !ok {
		t.Fatal("expected one undoable transaction")
	}
	if got, want := bufferText(t, e), "one\ntwo\nthree"; got != want {
		t.Errorf("after undo buffer = %q, want %q", got, want)
	}
	if ok, _ := e.Undo(); ok {
		t.Error("second undo should find nothing")
	}
}

func TestJoinLinesEmptyNext(t *testing.T) {
	e := newTestEditor("keep  \n\nafter")
	if err := e.JoinLines(1); err != nil {
		t.Fatalf("JoinLines: %v", err)
	}
	// The empty line is consumed; only trailing whitespace is lost.
	if got, want := bufferText(t, e), "keep\nafter"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestJoinLinesOnLastLine(t *testing.T) {
	e := newTestEditor("alone")
	if err := e.JoinLines(3); err != nil {
		t.Fatalf("JoinLines: %v", err)
	}
	if got, want := bufferText(t, e), "alone"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestReplaceChars(t *testing.T) {
	e := newTestEditor("abcdef")
	e.SetCursor(types.Position{Line: 0, Col: 2})

	if err := e.ReplaceChars('x', 3); err != nil {
		t.Fatalf("ReplaceChars: %v", err)
	}
	if got, want := bufferText(t, e), "abxxxf"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if e.Cursor != (types.Position{Line: 0, Col: 5}) {
		t.Errorf("cursor = %v, want {0 5}", e.Cursor)
	}

	if ok, _ := e.Undo(); !ok {
		t.Fatal("expected one undoable transaction")
	}
	if got, want := bufferText(t, e), "abcdef"; got != want {
		t.Errorf("after undo buffer = %q, want %q", got, want)
	}
}

func TestReplaceSingleCharKeepsCursor(t *testing.T) {
	e := newTestEditor("abcdef")
	e.SetCursor(types.Position{Line: 0, Col: 2})

	if err := e.ReplaceChars('x', 1); err != nil {
		t.Fatalf("ReplaceChars: %v", err)
	}
	if got, want := bufferText(t, e), "abxdef"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if e.Cursor != (types.Position{Line: 0, Col: 2}) {
		t.Errorf("cursor = %v, want {0 2}", e.Cursor)
	}
}

func TestReplaceCharsClampsToLine(t *testing.T) {
	e := newTestEditor("abc\nnext")
	e.SetCursor(types.Position{Line: 0, Col: 1})

	// Only two chars remain on the line; the count never crosses it.
	if err := e.ReplaceChars('z', 10); err != nil {
		t.Fatalf("ReplaceChars: %v", err)
	}
	if got, want := bufferText(t, e), "azz\nnext"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestInsertEmptyLines(t *testing.T) {
	e := newTestEditor("first\nsecond")
	e.SetCursor(types.Position{Line: 0, Col: 3})

	if err := e.InsertEmptyLines(types.DirBelow, 2); err != nil {
		t.Fatalf("InsertEmptyLines: %v", err)
	}
	if got, want := bufferText(t, e), "first\n\n\nsecond"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if e.Cursor != (types.Position{Line: 2, Col: 0}) {
		t.Errorf("cursor = %v, want {2 0}", e.Cursor)
	}

	if ok, _ := e.Undo(); !ok {
		t.Fatal("expected one undoable transaction")
	}
	if got, want := bufferText(t, e), "first\nsecond"; got != want {
		t.Errorf("after undo buffer = %q, want %q", got, want)
	}
}

func TestInsertEmptyLinesAbove(t *testing.T) {
	e := newTestEditor("first\nsecond")
	e.SetCursor(types.Position{Line: 1, Col: 2})

	if err := e.InsertEmptyLines(types.DirAbove, 1); err != nil {
		t.Fatalf("InsertEmptyLines: %v", err)
	}
	if got, want := bufferText(t, e), "first\n\nsecond"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if e.Cursor != (types.Position{Line: 1, Col: 0}) {
		t.Errorf("cursor = %v, want {1 0}", e.Cursor)
	}
}

func TestDeleteLines(t *testing.T) {
	e := newTestEditor("one\ntwo\nthree\nfour")
	e.SetCursor(types.Position{Line: 1, Col: 0})

	if err := e.DeleteLines(2); err != nil {
		t.Fatalf("DeleteLines: %v", err)
	}
	if got, want := bufferText(t, e), "one\nfour"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if e.Cursor.Line != 1 {
		t.Errorf("cursor line = %d, want 1", e.Cursor.Line)
	}
}

func TestDeleteLinesThroughEnd(t *testing.T) {
	e := newTestEditor("one\ntwo\nthree")
	e.SetCursor(types.Position{Line: 1, Col: 0})

	// Count overshoots; the preceding newline goes with the last lines.
	if err := e.DeleteLines(10); err != nil {
		t.Fatalf("DeleteLines: %v", err)
	}
	if got, want := bufferText(t, e), "one"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestDeleteLinesWholeBuffer(t *testing.T) {
	e := newTestEditor("only\nlines")
	if err := e.DeleteLines(5); err != nil {
		t.Fatalf("DeleteLines: %v", err)
	}
	if got, want := bufferText(t, e), ""; got != want {
		t.Errorf("buffer = %q, want empty", got)
	}
	if e.GetBuffer().LineCount() != 1 {
		t.Errorf("LineCount = %d, want the single empty line", e.GetBuffer().LineCount())
	}
}

func TestDeleteToEOL(t *testing.T) {
	e := newTestEditor("hello world\nnext")
	e.SetCursor(types.Position{Line: 0, Col: 5})

	if err := e.DeleteToEOL(); err != nil {
		t.Fatalf("DeleteToEOL: %v", err)
	}
	if got, want := bufferText(t, e), "hello\nnext"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestCutChars(t *testing.T) {
	e := newTestEditor("abcdef")
	e.SetCursor(types.Position{Line: 0, Col: 1})

	if err := e.CutChars(3); err != nil {
		t.Fatalf("CutChars: %v", err)
	}
	if got, want := bufferText(t, e), "aef"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}

	// The cut text lands in the register and pastes back.
	e.SetCursor(types.Position{Line: 0, Col: 3})
	if ok, err := e.GetClipboardManager().Paste(); err != nil || !ok {
		t.Fatalf("Paste: ok=%v err=%v", ok, err)
	}
	if got, want := bufferText(t, e), "aefbcd"; got != want {
		t.Errorf("after paste buffer = %q, want %q", got, want)
	}
}

func TestCutCharsClampsAtEOL(t *testing.T) {
	e := newTestEditor("ab\ncd")
	e.SetCursor(types.Position{Line: 0, Col: 1})

	if err := e.CutChars(10); err != nil {
		t.Fatalf("CutChars: %v", err)
	}
	// The newline is never consumed.
	if got, want := bufferText(t, e), "a\ncd"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestDeleteBackwardChars(t *testing.T) {
	e := newTestEditor("ab\ncdef")
	e.SetCursor(types.Position{Line: 1, Col: 2})

	if err := e.DeleteBackwardChars(3); err != nil {
		t.Fatalf("DeleteBackwardChars: %v", err)
	}
	// Crossing column 0 joins with the previous line.
	if got, want := bufferText(t, e), "abef"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if e.Cursor != (types.Position{Line: 0, Col: 2}) {
		t.Errorf("cursor = %v, want {0 2}", e.Cursor)
	}
}

func TestIndentUnindent(t *testing.T) {
	e := newTestEditor("one\n    two\n\tthree")

	if err := e.IndentLines(3); err != nil {
		t.Fatalf("IndentLines: %v", err)
	}
	if got, want := bufferText(t, e), "\tone\n\t    two\n\t\tthree"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}

	if err := e.UnindentLines(3); err != nil {
		t.Fatalf("UnindentLines: %v", err)
	}
	if got, want := bufferText(t, e), "one\n    two\n\tthree"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}

	// Unindenting further strips up to tabWidth leading spaces per line.
	if err := e.UnindentLines(3); err != nil {
		t.Fatalf("UnindentLines: %v", err)
	}
	if got, want := bufferText(t, e), "one\ntwo\nthree"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestDeleteSelectionCharacter(t *testing.T) {
	e := newTestEditor("hello world")
	e.SetCursor(types.Position{Line: 0, Col: 2})
	e.ToggleSelection(types.SelectionCharacter)
	e.SetCursor(types.Position{Line: 0, Col: 7})

	ok, err := e.DeleteSelection()
	if err != nil || !ok {
		t.Fatalf("DeleteSelection: ok=%v err=%v", ok, err)
	}
	if got, want := bufferText(t, e), "heorld"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if e.HasSelection() {
		t.Error("selection should be cleared after delete")
	}
	if e.Cursor != (types.Position{Line: 0, Col: 2}) {
		t.Errorf("cursor = %v, want selection start", e.Cursor)
	}
}

func TestDeleteSelectionLine(t *testing.T) {
	e := newTestEditor("one\ntwo\nthree")
	e.SetCursor(types.Position{Line: 0, Col: 2})
	e.ToggleSelection(types.SelectionLine)
	e.SetCursor(types.Position{Line: 1, Col: 1})

	ok, err := e.DeleteSelection()
	if err != nil || !ok {
		t.Fatalf("DeleteSelection: ok=%v err=%v", ok, err)
	}
	if got, want := bufferText(t, e), "three"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestEditOutsideScopeIsRejected(t *testing.T) {
	e := newTestEditor("locked")
	// Movement mode: no scope open, the buffer refuses direct writes.
	if err := e.InsertRune('x'); err == nil {
		t.Fatal("expected ErrReadOnlyBuffer")
	}
	e.SetReadOnly(false)
	if err := e.InsertRune('x'); err != nil {
		t.Fatalf("writable insert failed: %v", err)
	}
	if got, want := bufferText(t, e), "xlocked"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}
