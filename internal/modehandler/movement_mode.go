// internal/modehandler/movement_mode.go
package modehandler

import (
	"github.com/juanjux/neme/internal/input"
	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/motion"
	"github.com/juanjux/neme/internal/types"
)

// handleMovement executes one movement-mode action. The number prefix is
// consumed by whatever command follows it and cleared afterwards.
func (mh *ModeHandler) handleMovement(actionEvent input.ActionEvent) bool {
	n := mh.prefix.Value()
	// Line-oriented commands cap the count at the buffer's line count.
	nLines := mh.prefix.ValueClamped(mh.editor.GetBuffer().LineCount())
	hasPrefix := mh.prefix.Has()
	actionProcessed := true

	switch actionEvent.Action {
	case input.ActionPrefixDigit:
		if !mh.prefix.Append(actionEvent.Rune) {
			// A '0' with no count pending is the home motion.
			mh.editor.Home()
		}

	// --- Mode switches ---
	case input.ActionEnterTyping:
		mh.SetMode(types.ModeTyping)
	case input.ActionAppendAfter:
		mh.editor.MoveCursor(0, 1)
		mh.SetMode(types.ModeTyping)
	case input.ActionAppendEOL:
		mh.editor.End()
		mh.SetMode(types.ModeTyping)
	case input.ActionInsertFirstNonBlank:
		mh.editor.FirstNonBlank()
		mh.SetMode(types.ModeTyping)
	case input.ActionEnterCommandMode:
		mh.editor.ClearSelection()
		mh.cmdBuffer = ""
		mh.SetMode(types.ModeCommand)
		mh.statusBar.SetTemporaryMessage(">")
	case input.ActionEnterReplaceMode:
		mh.replaceRepeat = n
		mh.SetMode(types.ModeReplaceChar)

	// --- Cursor motion ---
	case input.ActionMoveUp:
		mh.editor.MoveLines(-nLines)
	case input.ActionMoveDown:
		mh.editor.MoveLines(nLines)
	case input.ActionMoveLeft:
		for i := 0; i < n; i++ {
			mh.editor.MoveCursor(0, -1)
		}
	case input.ActionMoveRight:
		for i := 0; i < n; i++ {
			mh.editor.MoveCursor(0, 1)
		}
	case input.ActionLineJumpUp:
		mh.editor.MoveLines(-nLines * mh.editorCfg.LineJump)
	case input.ActionLineJumpDown:
		mh.editor.MoveLines(nLines * mh.editorCfg.LineJump)
	case input.ActionMovePageUp:
		for i := 0; i < nLines; i++ {
			mh.editor.PageMove(-1)
		}
	case input.ActionMovePageDown:
		for i := 0; i < nLines; i++ {
			mh.editor.PageMove(1)
		}
	case input.ActionFirstNonBlank:
		mh.editor.FirstNonBlank()
	case input.ActionMoveEndChar:
		mh.editor.EndChar()
	case input.ActionGotoLine:
		// Only meaningful with a typed line number.
		if hasPrefix {
			mh.editor.GotoLine(nLines)
		} else {
			actionProcessed = false
		}
	case input.ActionGotoLastLine:
		mh.editor.GotoLastLine()

	// --- Word motions ---
	case input.ActionWordForward:
		mh.editor.WordMotion(motion.Word, motion.EdgeStart, types.DirRight, n)
	case input.ActionWordBackward:
		mh.editor.WordMotion(motion.Word, motion.EdgeStart, types.DirLeft, n)
	case input.ActionWordEnd:
		mh.editor.WordMotion(motion.Word, motion.EdgeEnd, types.DirRight, n)
	case input.ActionPrevWordEnd:
		mh.editor.WordMotion(motion.Word, motion.EdgeEnd, types.DirLeft, n)
	case input.ActionBigWordForward:
		mh.editor.WordMotion(motion.BigWord, motion.EdgeStart, types.DirRight, n)
	case input.ActionBigWordBackward:
		mh.editor.WordMotion(motion.BigWord, motion.EdgeStart, types.DirLeft, n)
	case input.ActionBigWordEnd:
		mh.editor.WordMotion(motion.BigWord, motion.EdgeEnd, types.DirRight, n)
	case input.ActionPrevBigWordEnd:
		mh.editor.WordMotion(motion.BigWord, motion.EdgeEnd, types.DirLeft, n)

	// --- Editing ---
	case input.ActionOpenBelow:
		if err := mh.editor.InsertEmptyLines(types.DirBelow, n); err != nil {
			mh.reportError("Open line failed", err)
		} else {
			mh.SetMode(types.ModeTyping)
		}
	case input.ActionOpenAbove:
		if err := mh.editor.InsertEmptyLines(types.DirAbove, n); err != nil {
			mh.reportError("Open line failed", err)
		} else {
			mh.SetMode(types.ModeTyping)
		}
	case input.ActionJoinLines:
		if err := mh.editor.JoinLines(nLines); err != nil {
			mh.reportError("Join failed", err)
		}
	case input.ActionCutChars:
		if err := mh.editor.CutChars(n); err != nil {
			mh.reportError("Cut failed", err)
		}
	case input.ActionDeleteBackChars:
		if err := mh.editor.DeleteBackwardChars(n); err != nil {
			mh.reportError("Delete failed", err)
		}
	case input.ActionDeleteLines:
		// Like the goto, a bare 'd' does nothing.
		if hasPrefix {
			if err := mh.editor.DeleteLines(nLines); err != nil {
				mh.reportError("Delete lines failed", err)
			}
		} else {
			actionProcessed = false
		}
	case input.ActionChangeLines:
		if hasPrefix {
			if err := mh.changeLines(nLines); err != nil {
				mh.reportError("Change lines failed", err)
			} else {
				mh.SetMode(types.ModeTyping)
			}
		} else {
			actionProcessed = false
		}
	case input.ActionDeleteToEOL:
		if err := mh.editor.DeleteToEOL(); err != nil {
			mh.reportError("Delete failed", err)
		}
	case input.ActionChangeToEOL:
		if err := mh.editor.DeleteToEOL(); err != nil {
			mh.reportError("Change failed", err)
		} else {
			mh.SetMode(types.ModeTyping)
		}
	case input.ActionIndent:
		if err := mh.editor.IndentLines(n); err != nil {
			mh.reportError("Indent failed", err)
		}
	case input.ActionUnindent:
		if err := mh.editor.UnindentLines(n); err != nil {
			mh.reportError("Unindent failed", err)
		}
	case input.ActionUndo:
		mh.repeatUndo(n, true)
	case input.ActionRedo:
		mh.repeatUndo(n, false)

	// --- Clipboard and selection ---
	case input.ActionCopy:
		mh.copySelectionOrLines(n)
	case input.ActionYankLines:
		if err := mh.editor.GetClipboardManager().YankLines(n); err != nil {
			mh.reportError("Yank failed", err)
		} else {
			mh.statusBar.SetTemporaryMessage("%d line(s) yanked", n)
		}
	case input.ActionPaste:
		mh.pasteTimes(n)
	case input.ActionPasteLineBelow:
		scope := mh.editor.BeginEdit()
		err := mh.editor.InsertEmptyLines(types.DirBelow, 1)
		if err == nil {
			mh.pasteTimes(n)
		}
		scope.Close()
		if err != nil {
			mh.reportError("Paste failed", err)
		}
	case input.ActionCopyLineOrSelection:
		mh.copySelectionOrLines(1)
	case input.ActionRectangleOrPaste:
		if mh.editor.HasSelection() {
			mh.editor.ChangeSelectionMode(types.SelectionRectangular)
		} else {
			mh.pasteTimes(n)
		}
	case input.ActionToggleCharSelection:
		mh.editor.ToggleSelection(types.SelectionCharacter)
	case input.ActionToggleLineSelection:
		mh.editor.ToggleSelection(types.SelectionLine)

	// --- Find and search ---
	case input.ActionFindCharForward:
		mh.findDirection = types.DirRight
		mh.SetMode(types.ModeFindChar)
	case input.ActionFindCharBackward:
		mh.findDirection = types.DirLeft
		mh.SetMode(types.ModeFindChar)
	case input.ActionRepeatFindChar:
		actionProcessed = mh.editor.GetFindManager().RepeatFindChar()
	case input.ActionRepeatFindCharReversed:
		actionProcessed = mh.editor.GetFindManager().RepeatFindCharReversed()
	case input.ActionSearchWordForward:
		mh.searchWord(types.DirBelow)
	case input.ActionSearchWordBackward:
		mh.searchWord(types.DirAbove)
	case input.ActionRepeatSearch:
		if !mh.editor.GetFindManager().RepeatLastSearch(false) {
			mh.statusBar.SetTemporaryMessage("No more matches")
		}
	case input.ActionRepeatSearchReversed:
		if !mh.editor.GetFindManager().RepeatLastSearch(true) {
			mh.statusBar.SetTemporaryMessage("No more matches")
		}

	// --- Files ---
	case input.ActionSave:
		mh.save()
	case input.ActionSaveQuit:
		if mh.save() {
			mh.RequestQuit()
		}

	default:
		actionProcessed = false
	}

	// The prefix feeds exactly one command.
	if actionEvent.Action != input.ActionPrefixDigit {
		mh.prefix.Clear()
	}
	return actionProcessed
}

// changeLines deletes n lines and opens an empty one in their place, all
// as a single undo step.
func (mh *ModeHandler) changeLines(n int) error {
	scope := mh.editor.BeginEdit()
	defer scope.Close()

	if err := mh.editor.DeleteLines(n); err != nil {
		return err
	}
	return mh.editor.InsertEmptyLines(types.DirAbove, 1)
}

// copySelectionOrLines copies the active selection, or yanks n whole
// lines when nothing is selected.
func (mh *ModeHandler) copySelectionOrLines(n int) {
	copied, err := mh.editor.GetClipboardManager().CopySelection()
	if err != nil {
		mh.reportError("Copy failed", err)
		return
	}
	if copied {
		mh.statusBar.SetTemporaryMessage("Selection copied")
		return
	}
	if err := mh.editor.GetClipboardManager().YankLines(n); err != nil {
		mh.reportError("Copy failed", err)
		return
	}
	mh.statusBar.SetTemporaryMessage("%d line(s) copied", n)
}

// pasteTimes pastes the register n times.
func (mh *ModeHandler) pasteTimes(n int) {
	for i := 0; i < n; i++ {
		pasted, err := mh.editor.GetClipboardManager().Paste()
		if err != nil {
			mh.reportError("Paste failed", err)
			return
		}
		if !pasted {
			mh.statusBar.SetTemporaryMessage("Clipboard empty")
			return
		}
	}
}

// repeatUndo runs undo (or redo) n times, stopping when the stack runs
// dry.
func (mh *ModeHandler) repeatUndo(n int, undo bool) {
	for i := 0; i < n; i++ {
		var ok bool
		var err error
		if undo {
			ok, err = mh.editor.Undo()
		} else {
			ok, err = mh.editor.Redo()
		}
		if err != nil {
			mh.reportError("Undo failed", err)
			return
		}
		if !ok {
			if i == 0 {
				if undo {
					mh.statusBar.SetTemporaryMessage("Nothing to undo")
				} else {
					mh.statusBar.SetTemporaryMessage("Nothing to redo")
				}
			}
			return
		}
	}
}

func (mh *ModeHandler) searchWord(dir types.Direction) {
	if !mh.editor.GetFindManager().SearchWordUnderCursor(dir) {
		mh.statusBar.SetTemporaryMessage("No match")
	}
}

func (mh *ModeHandler) reportError(prefix string, err error) {
	logger.Debugf("ModeHandler: %s: %v", prefix, err)
	mh.statusBar.SetTemporaryMessage("%s: %v", prefix, err)
}
