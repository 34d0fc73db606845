package core

// EditScope bundles a grouped undo transaction with temporary writability.
// Acquire with BeginEdit and release with Close, normally in a defer, so
// the read-only state and the undo group are restored on every exit path.
type EditScope struct {
	e      *Editor
	closed bool
}

// BeginEdit opens an edit scope: the buffer becomes writable regardless of
// the current mode and every change recorded until Close joins a single
// undo transaction. Scopes nest; the transaction closes with the outermost
// one.
func (e *Editor) BeginEdit() *EditScope {
	e.writeOverride++
	e.historyManager.BeginGroup(e.Cursor)
	return &EditScope{e: e}
}

// Close ends the undo group and drops the writability override. Calling
// Close more than once is a no-op.
func (s *EditScope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.e.historyManager.EndGroup(s.e.Cursor)
	s.e.writeOverride--
}
