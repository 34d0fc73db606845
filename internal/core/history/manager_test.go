package history

import (
	"testing"

	"github.com/juanjux/neme/internal/buffer"
	"github.com/juanjux/neme/internal/event"
	"github.com/juanjux/neme/internal/types"
)

// fakeEditor implements EditorInterface over a bare buffer.
type fakeEditor struct {
	buf    buffer.Buffer
	cursor types.Position
	events *event.Manager
}

func (f *fakeEditor) GetBuffer() buffer.Buffer        { return f.buf }
func (f *fakeEditor) SetCursor(pos types.Position)    { f.cursor = pos }
func (f *fakeEditor) GetEventManager() *event.Manager { return f.events }
func (f *fakeEditor) ScrollToCursor()                 {}

func newFakeEditor(content string) *fakeEditor {
	return &fakeEditor{
		buf:    buffer.NewSliceBufferFromString(content),
		events: event.NewManager(),
	}
}

func insertChange(ed *fakeEditor, pos types.Position, text string) Change {
	end, _ := ed.buf.Insert(pos, []byte(text))
	return Change{
		Type:          InsertAction,
		Text:          []byte(text),
		StartPosition: pos,
		EndPosition:   end,
		CursorBefore:  pos,
	}
}

func deleteChange(ed *fakeEditor, start, end types.Position) Change {
	removed, _ := ed.buf.Delete(start, end)
	return Change{
		Type:          DeleteAction,
		Text:          removed,
		StartPosition: start,
		EndPosition:   end,
		CursorBefore:  end,
	}
}

func TestUndoRedoSingleChange(t *testing.T) {
	ed := newFakeEditor("hello")
	m := NewManager(ed, 0)

	m.RecordChange(insertChange(ed, types.Position{Line: 0, Col: 5}, " world"))
	if got := string(ed.buf.Bytes()); got != "hello world" {
		t.Fatalf("content = %q", got)
	}

	ok, err := m.Undo()
	if err != nil || !ok {
		t.Fatalf("Undo = (%v, %v)", ok, err)
	}
	if got := string(ed.buf.Bytes()); got != "hello" {
		t.Errorf("after undo content = %q, want %q", got, "hello")
	}
	if ed.cursor != (types.Position{Line: 0, Col: 5}) {
		t.Errorf("cursor after undo = %+v", ed.cursor)
	}

	ok, err = m.Redo()
	if err != nil || !ok {
		t.Fatalf("Redo = (%v, %v)", ok, err)
	}
	if got := string(ed.buf.Bytes()); got != "hello world" {
		t.Errorf("after redo content = %q, want %q", got, "hello world")
	}
}

func TestGroupedChangesUndoAtomically(t *testing.T) {
	ed := newFakeEditor("one\ntwo\nthree")
	m := NewManager(ed, 0)

	m.BeginGroup(types.Position{Line: 0, Col: 0})
	m.RecordChange(deleteChange(ed, types.Position{Line: 0, Col: 0}, types.Position{Line: 1, Col: 0}))
	m.RecordChange(insertChange(ed, types.Position{Line: 0, Col: 0}, "TWO!"))
	m.EndGroup(types.Position{Line: 0, Col: 4})

	if got := string(ed.buf.Bytes()); got != "TWO!two\nthree" {
		t.Fatalf("content = %q", got)
	}
	if !m.CanUndo() {
		t.Fatal("expected undoable transaction")
	}

	ok, err := m.Undo()
	if err != nil || !ok {
		t.Fatalf("Undo = (%v, %v)", ok, err)
	}
	if got := string(ed.buf.Bytes()); got != "one\ntwo\nthree" {
		t.Errorf("one undo should revert the whole group, got %q", got)
	}
	if m.CanUndo() {
		t.Error("group must be a single undo step")
	}

	ok, err = m.Redo()
	if err != nil || !ok {
		t.Fatalf("Redo = (%v, %v)", ok, err)
	}
	if got := string(ed.buf.Bytes()); got != "TWO!two\nthree" {
		t.Errorf("redo should reapply the whole group, got %q", got)
	}
	if ed.cursor != (types.Position{Line: 0, Col: 4}) {
		t.Errorf("cursor after redo = %+v", ed.cursor)
	}
}

func TestNestedGroupsFlatten(t *testing.T) {
	ed := newFakeEditor("")
	m := NewManager(ed, 0)

	m.BeginGroup(types.Position{})
	m.RecordChange(insertChange(ed, types.Position{}, "a"))
	m.BeginGroup(types.Position{})
	m.RecordChange(insertChange(ed, types.Position{Line: 0, Col: 1}, "b"))
	m.EndGroup(types.Position{Line: 0, Col: 2})
	m.EndGroup(types.Position{Line: 0, Col: 2})

	if _, err := m.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got := string(ed.buf.Bytes()); got != "" {
		t.Errorf("nested group should undo as one unit, got %q", got)
	}
	if m.CanUndo() {
		t.Error("expected a single flattened transaction")
	}
}

func TestEmptyGroupIsDiscarded(t *testing.T) {
	ed := newFakeEditor("x")
	m := NewManager(ed, 0)

	m.BeginGroup(types.Position{})
	m.EndGroup(types.Position{})

	if m.CanUndo() {
		t.Error("empty group must not create an undo step")
	}
}

func TestRecordClearsRedoHistory(t *testing.T) {
	ed := newFakeEditor("")
	m := NewManager(ed, 0)

	m.RecordChange(insertChange(ed, types.Position{}, "a"))
	if _, err := m.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	m.RecordChange(insertChange(ed, types.Position{}, "b"))

	if m.CanRedo() {
		t.Error("recording a change must clear redo history")
	}
}

func TestUndoEmptyStack(t *testing.T) {
	ed := newFakeEditor("x")
	m := NewManager(ed, 0)
	ok, err := m.Undo()
	if err != nil {
		t.Fatalf("Undo on empty stack errored: %v", err)
	}
	if ok {
		t.Error("Undo on empty stack should report false")
	}
}
