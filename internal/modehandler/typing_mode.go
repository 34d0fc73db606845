// internal/modehandler/typing_mode.go
package modehandler

import (
	"github.com/juanjux/neme/internal/input"
	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/types"
)

// handleTyping executes one typing-mode action. The escape chord works on
// plain inserts: the first chord key is inserted normally and armed, and
// if the very next key is the second chord key, the inserted char is
// removed and the editor drops back to movement mode. Any other key in
// between disarms the chord.
func (mh *ModeHandler) handleTyping(actionEvent input.ActionEvent) bool {
	wasArmed := mh.escapePending
	mh.escapePending = false
	actionProcessed := true

	switch actionEvent.Action {
	case input.ActionInsertRune:
		first, second := mh.editorCfg.EscapeChord()
		if wasArmed && actionEvent.Rune == second {
			if err := mh.editor.DeleteBackward(); err != nil {
				logger.Debugf("ModeHandler: escape chord cleanup failed: %v", err)
			}
			mh.SetMode(types.ModeMovement)
			return true
		}
		if err := mh.editor.InsertRune(actionEvent.Rune); err != nil {
			logger.Debugf("ModeHandler: InsertRune: %v", err)
			return false
		}
		if actionEvent.Rune == first {
			mh.escapePending = true
		}

	case input.ActionInsertNewline:
		if err := mh.editor.InsertNewline(); err != nil {
			logger.Debugf("ModeHandler: InsertNewline: %v", err)
			return false
		}
	case input.ActionInsertTab:
		if err := mh.editor.InsertTab(); err != nil {
			logger.Debugf("ModeHandler: InsertTab: %v", err)
			return false
		}
	case input.ActionDeleteCharBackward:
		if err := mh.editor.DeleteBackward(); err != nil {
			logger.Debugf("ModeHandler: DeleteBackward: %v", err)
			return false
		}
	case input.ActionDeleteCharForward:
		if err := mh.editor.DeleteForward(); err != nil {
			logger.Debugf("ModeHandler: DeleteForward: %v", err)
			return false
		}

	case input.ActionExitTyping:
		mh.SetMode(types.ModeMovement)

	case input.ActionMoveUp:
		mh.editor.MoveLines(-1)
	case input.ActionMoveDown:
		mh.editor.MoveLines(1)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)

	case input.ActionSave:
		mh.save()
	case input.ActionSaveQuit:
		if mh.save() {
			mh.RequestQuit()
		}

	default:
		actionProcessed = false
	}
	return actionProcessed
}
