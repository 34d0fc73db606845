// internal/modehandler/findchar_mode.go
package modehandler

import (
	"github.com/juanjux/neme/internal/input"
	"github.com/juanjux/neme/internal/types"
)

// handleFindChar consumes the target char for the pending f/F motion and
// drops back to movement mode whether or not the char was found.
func (mh *ModeHandler) handleFindChar(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionFindTarget:
		found := mh.editor.GetFindManager().FindCharInLine(actionEvent.Rune, mh.findDirection)
		mh.SetMode(types.ModeMovement)
		if !found {
			mh.statusBar.SetTemporaryMessage("Char %q not found", actionEvent.Rune)
		}
		return true

	case input.ActionCancelPending:
		mh.SetMode(types.ModeMovement)
		return true
	}
	return false
}
