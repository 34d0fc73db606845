// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown       Action = iota // Default/invalid action
	ActionSave                        // F1
	ActionSaveQuit                    // F3
	ActionCancelPending               // Escape out of a single-key mode

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionLineJumpUp   // Backspace in movement mode: jump N lines up
	ActionLineJumpDown // Return in movement mode: jump N lines down
	ActionFirstNonBlank
	ActionMoveEndChar // Last character of the line
	ActionGotoLine    // Prefix-driven absolute line jump
	ActionGotoLastLine

	// --- Word Motions ---
	ActionWordForward
	ActionWordBackward
	ActionWordEnd
	ActionBigWordForward
	ActionBigWordBackward
	ActionBigWordEnd
	ActionPrevWordEnd
	ActionPrevBigWordEnd

	// --- Mode Switches ---
	ActionEnterTyping         // 't'
	ActionAppendAfter         // 'a': one right, then typing
	ActionAppendEOL           // 'A': end of line, then typing
	ActionInsertFirstNonBlank // 'I': first non-blank, then typing
	ActionEnterCommandMode    // Space
	ActionEnterReplaceMode    // 'r'
	ActionExitTyping          // Escape while typing

	// --- Text Manipulation ---
	ActionInsertRune // Requires Rune argument
	ActionInsertNewline
	ActionInsertTab
	ActionDeleteCharBackward
	ActionDeleteCharForward
	ActionOpenBelow // 'o': open line(s) below, then typing
	ActionOpenAbove // 'O'
	ActionJoinLines
	ActionCutChars        // 'x': cut N chars into the register
	ActionDeleteBackChars // 'X': backspace N times
	ActionDeleteLines     // 'd' with a prefix
	ActionChangeLines     // 'c' with a prefix, then typing
	ActionDeleteToEOL     // 'D'
	ActionChangeToEOL     // 'C', then typing
	ActionIndent
	ActionUnindent
	ActionUndo
	ActionRedo

	// --- Clipboard ---
	ActionCopy                // 'y': selection or nothing
	ActionYankLines           // 'Y'
	ActionPaste               // 'p'
	ActionPasteLineBelow      // 'P': open a line below, paste there
	ActionCopyLineOrSelection // Ctrl+C: selection if active, else whole line
	ActionRectangleOrPaste    // Ctrl+V: rectangular selection if selecting, else paste

	// --- Selection ---
	ActionToggleCharSelection
	ActionToggleLineSelection

	// --- Find / Search ---
	ActionFindCharForward  // 'f', waits for the target char
	ActionFindCharBackward // 'F'
	ActionFindTarget       // The char pressed while in find-char mode
	ActionRepeatFindChar
	ActionRepeatFindCharReversed
	ActionSearchWordForward
	ActionSearchWordBackward
	ActionRepeatSearch
	ActionRepeatSearchReversed

	// --- Replace-char Mode ---
	ActionReplaceWith // The char pressed while in replace mode

	// --- Command Mode ---
	ActionExecuteCommand
	ActionCancelCommand
	ActionAppendCommand
	ActionDeleteCommandChar

	// --- Number Prefix ---
	ActionPrefixDigit // Digit pressed in movement mode
)

// ActionEvent represents a decoded input event resulting in an action.
// It might carry payload data needed for the action (like the rune to insert).
type ActionEvent struct {
	Action Action
	Rune   rune // Used for rune-carrying actions
}
