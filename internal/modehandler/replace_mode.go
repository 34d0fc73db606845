// internal/modehandler/replace_mode.go
package modehandler

import (
	"github.com/juanjux/neme/internal/input"
	"github.com/juanjux/neme/internal/types"
)

// handleReplaceChar consumes the single replacement char and drops back
// to movement mode. The count typed before 'r' was armed by the mode
// switch and drives how many chars get overwritten.
func (mh *ModeHandler) handleReplaceChar(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionReplaceWith:
		err := mh.editor.ReplaceChars(actionEvent.Rune, mh.replaceRepeat)
		mh.replaceRepeat = 1
		mh.SetMode(types.ModeMovement)
		if err != nil {
			mh.reportError("Replace failed", err)
			return false
		}
		return true

	case input.ActionCancelPending:
		mh.replaceRepeat = 1
		mh.SetMode(types.ModeMovement)
		return true
	}
	return false
}
