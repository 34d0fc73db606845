// internal/types/mode.go
package types

// EditorMode identifies one of the mutually exclusive editing modes. Exactly
// one mode is active at any time; ownership lives in the mode handler.
type EditorMode int

const (
	// ModeMovement is the initial mode: keys are commands, buffer read-only.
	ModeMovement EditorMode = iota
	// ModeTyping inserts text (ex-insert mode).
	ModeTyping
	// ModeCommand collects a command line (entered with Space).
	ModeCommand
	// ModeReplaceChar waits for a single character to overwrite with.
	ModeReplaceChar
	// ModeFindChar waits for a single character to seek in the current line.
	ModeFindChar
)

// String returns the mode name shown in the status bar.
func (m EditorMode) String() string {
	switch m {
	case ModeMovement:
		return "MOVEMENT"
	case ModeTyping:
		return "TYPING"
	case ModeCommand:
		return "COMMAND"
	case ModeReplaceChar:
		return "REPLACE"
	case ModeFindChar:
		return "FINDCHAR"
	default:
		return "UNKNOWN"
	}
}

// CaretStyle is the visual cursor shape requested for a mode.
type CaretStyle int

const (
	// CaretBlock is the full-cell cursor used in Movement mode.
	CaretBlock CaretStyle = iota
	// CaretBar is the thin line cursor used in Typing and ReplaceChar modes.
	CaretBar
)
