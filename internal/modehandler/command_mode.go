// internal/modehandler/command_mode.go
package modehandler

import (
	"github.com/juanjux/neme/internal/input"
	"github.com/juanjux/neme/internal/types"
)

// handleCommand edits and runs the command line. Enter executes, Escape
// cancels, and backspacing past an empty line also cancels.
func (mh *ModeHandler) handleCommand(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	needsUpdate := false

	switch actionEvent.Action {
	case input.ActionAppendCommand:
		mh.cmdBuffer += string(actionEvent.Rune)
		needsUpdate = true

	case input.ActionDeleteCommandChar:
		if len(mh.cmdBuffer) > 0 {
			runes := []rune(mh.cmdBuffer)
			mh.cmdBuffer = string(runes[:len(runes)-1])
			needsUpdate = true
		} else {
			mh.SetMode(types.ModeMovement)
			mh.statusBar.ResetTemporaryMessage()
		}

	case input.ActionExecuteCommand:
		mh.executeCommand()
		mh.SetMode(types.ModeMovement)

	case input.ActionCancelCommand:
		mh.cmdBuffer = ""
		mh.SetMode(types.ModeMovement)
		mh.statusBar.ResetTemporaryMessage()

	default:
		actionProcessed = false
	}

	if needsUpdate && mh.currentMode == types.ModeCommand {
		mh.statusBar.SetTemporaryMessage(">%s", mh.cmdBuffer)
	}
	return actionProcessed
}
