// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/juanjux/neme/internal/types"
)

// binding identifies one key chord within one editor mode. Rune bindings
// set key to tcell.KeyRune and carry the rune; special keys leave r zero.
type binding struct {
	mode types.EditorMode
	mod  tcell.ModMask
	key  tcell.Key
	r    rune
}

// Processor translates tcell key events into ActionEvents according to
// the active editor mode.
type Processor struct {
	bindings map[binding]Action
}

// NewProcessor creates a processor with the default bindings.
func NewProcessor() *Processor {
	p := &Processor{bindings: make(map[binding]Action)}
	p.loadDefaultBindings()
	return p
}

// bindRune registers a plain rune chord for a mode.
func (p *Processor) bindRune(mode types.EditorMode, r rune, action Action) {
	p.bindings[binding{mode: mode, key: tcell.KeyRune, r: r}] = action
}

// bindAltRune registers an Alt+rune chord for a mode.
func (p *Processor) bindAltRune(mode types.EditorMode, r rune, action Action) {
	p.bindings[binding{mode: mode, mod: tcell.ModAlt, key: tcell.KeyRune, r: r}] = action
}

// bindKey registers a special key for a mode.
func (p *Processor) bindKey(mode types.EditorMode, key tcell.Key, action Action) {
	p.bindings[binding{mode: mode, key: key}] = action
}

// bindCtrl registers a Ctrl+key chord for a mode. The key should be one
// of the tcell.KeyCtrl* constants.
func (p *Processor) bindCtrl(mode types.EditorMode, key tcell.Key, action Action) {
	p.bindings[binding{mode: mode, mod: tcell.ModCtrl, key: key}] = action
}

// loadDefaultBindings sets up the home-row key mappings.
func (p *Processor) loadDefaultBindings() {
	mv := types.ModeMovement
	ty := types.ModeTyping
	cm := types.ModeCommand

	// --- Movement mode: mode switches ---
	p.bindRune(mv, 't', ActionEnterTyping)
	p.bindRune(mv, 'a', ActionAppendAfter)
	p.bindRune(mv, 'A', ActionAppendEOL)
	p.bindRune(mv, 'I', ActionInsertFirstNonBlank)
	p.bindRune(mv, ' ', ActionEnterCommandMode)
	p.bindRune(mv, 'r', ActionEnterReplaceMode)

	// --- Movement mode: cursor motion ---
	p.bindRune(mv, 'i', ActionMoveUp)
	p.bindRune(mv, 'k', ActionMoveDown)
	p.bindRune(mv, 'j', ActionMoveLeft)
	p.bindRune(mv, 'l', ActionMoveRight)
	p.bindKey(mv, tcell.KeyUp, ActionMoveUp)
	p.bindKey(mv, tcell.KeyDown, ActionMoveDown)
	p.bindKey(mv, tcell.KeyLeft, ActionMoveLeft)
	p.bindKey(mv, tcell.KeyRight, ActionMoveRight)
	p.bindKey(mv, tcell.KeyBackspace, ActionLineJumpUp)
	p.bindKey(mv, tcell.KeyBackspace2, ActionLineJumpUp)
	p.bindKey(mv, tcell.KeyEnter, ActionLineJumpDown)
	p.bindRune(mv, 's', ActionFirstNonBlank)
	p.bindRune(mv, '$', ActionMoveEndChar)
	p.bindRune(mv, 'g', ActionGotoLine)
	p.bindRune(mv, 'G', ActionGotoLastLine)
	p.bindKey(mv, tcell.KeyPgUp, ActionMovePageUp)
	p.bindKey(mv, tcell.KeyPgDn, ActionMovePageDown)
	// Ctrl+I arrives as a plain Tab in terminals, so Tab pages up here.
	p.bindKey(mv, tcell.KeyTab, ActionMovePageUp)
	p.bindCtrl(mv, tcell.KeyCtrlK, ActionMovePageDown)

	// --- Movement mode: word motions ---
	p.bindRune(mv, 'w', ActionWordForward)
	p.bindRune(mv, 'b', ActionWordBackward)
	p.bindRune(mv, 'e', ActionWordEnd)
	p.bindRune(mv, 'W', ActionBigWordForward)
	p.bindRune(mv, 'B', ActionBigWordBackward)
	p.bindRune(mv, 'E', ActionBigWordEnd)
	p.bindAltRune(mv, 'e', ActionPrevWordEnd)
	p.bindAltRune(mv, 'b', ActionPrevBigWordEnd)

	// --- Movement mode: editing ---
	p.bindRune(mv, 'o', ActionOpenBelow)
	p.bindRune(mv, 'O', ActionOpenAbove)
	p.bindRune(mv, 'J', ActionJoinLines)
	p.bindRune(mv, 'x', ActionCutChars)
	p.bindRune(mv, 'X', ActionDeleteBackChars)
	p.bindRune(mv, 'd', ActionDeleteLines)
	p.bindRune(mv, 'c', ActionChangeLines)
	p.bindRune(mv, 'D', ActionDeleteToEOL)
	p.bindRune(mv, 'C', ActionChangeToEOL)
	p.bindRune(mv, '>', ActionIndent)
	p.bindRune(mv, '<', ActionUnindent)
	p.bindRune(mv, 'u', ActionUndo)
	p.bindAltRune(mv, 'u', ActionRedo)

	// --- Movement mode: clipboard and selection ---
	p.bindRune(mv, 'y', ActionCopy)
	p.bindRune(mv, 'Y', ActionYankLines)
	p.bindRune(mv, 'p', ActionPaste)
	p.bindRune(mv, 'P', ActionPasteLineBelow)
	p.bindRune(mv, 'v', ActionToggleCharSelection)
	p.bindRune(mv, 'V', ActionToggleLineSelection)
	p.bindCtrl(mv, tcell.KeyCtrlC, ActionCopyLineOrSelection)
	p.bindCtrl(mv, tcell.KeyCtrlV, ActionRectangleOrPaste)

	// --- Movement mode: find and search ---
	p.bindRune(mv, 'f', ActionFindCharForward)
	p.bindRune(mv, 'F', ActionFindCharBackward)
	p.bindRune(mv, ';', ActionRepeatFindChar)
	p.bindRune(mv, ',', ActionRepeatFindCharReversed)
	p.bindRune(mv, '*', ActionSearchWordForward)
	p.bindRune(mv, '#', ActionSearchWordBackward)
	p.bindRune(mv, 'n', ActionRepeatSearch)
	p.bindRune(mv, 'N', ActionRepeatSearchReversed)

	// --- Movement mode: files ---
	p.bindKey(mv, tcell.KeyF1, ActionSave)
	p.bindKey(mv, tcell.KeyF3, ActionSaveQuit)

	// --- Typing mode ---
	p.bindKey(ty, tcell.KeyEscape, ActionExitTyping)
	p.bindKey(ty, tcell.KeyEnter, ActionInsertNewline)
	p.bindKey(ty, tcell.KeyTab, ActionInsertTab)
	p.bindKey(ty, tcell.KeyBackspace, ActionDeleteCharBackward)
	p.bindKey(ty, tcell.KeyBackspace2, ActionDeleteCharBackward)
	p.bindKey(ty, tcell.KeyDelete, ActionDeleteCharForward)
	p.bindKey(ty, tcell.KeyUp, ActionMoveUp)
	p.bindKey(ty, tcell.KeyDown, ActionMoveDown)
	p.bindKey(ty, tcell.KeyLeft, ActionMoveLeft)
	p.bindKey(ty, tcell.KeyRight, ActionMoveRight)
	p.bindAltRune(ty, 'i', ActionMoveUp)
	p.bindAltRune(ty, 'k', ActionMoveDown)
	p.bindAltRune(ty, 'j', ActionMoveLeft)
	p.bindAltRune(ty, 'l', ActionMoveRight)
	p.bindKey(ty, tcell.KeyPgUp, ActionMovePageUp)
	p.bindKey(ty, tcell.KeyPgDn, ActionMovePageDown)
	p.bindCtrl(ty, tcell.KeyCtrlK, ActionMovePageDown)
	p.bindKey(ty, tcell.KeyF1, ActionSave)
	p.bindKey(ty, tcell.KeyF3, ActionSaveQuit)

	// --- Command mode ---
	p.bindKey(cm, tcell.KeyEnter, ActionExecuteCommand)
	p.bindKey(cm, tcell.KeyEscape, ActionCancelCommand)
	p.bindKey(cm, tcell.KeyBackspace, ActionDeleteCommandChar)
	p.bindKey(cm, tcell.KeyBackspace2, ActionDeleteCommandChar)

	// --- Single-key modes ---
	p.bindKey(types.ModeReplaceChar, tcell.KeyEscape, ActionCancelPending)
	p.bindKey(types.ModeFindChar, tcell.KeyEscape, ActionCancelPending)
}

// Resolve translates a key event into an ActionEvent for the given mode.
// Mode-dependent rune fallbacks (insert, append-to-command, replace
// target, find target, number prefix) are applied when no explicit
// binding matches.
func (p *Processor) Resolve(mode types.EditorMode, ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	r := ev.Rune()

	// The KeyCtrl* constants already imply Ctrl; normalize so lookups see
	// a single representation. Tab, Enter and Backspace share codes with
	// Ctrl+I/M/H and stay as the plain key.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ &&
		key != tcell.KeyTab && key != tcell.KeyEnter && key != tcell.KeyBackspace {
		mod |= tcell.ModCtrl
	}

	if key == tcell.KeyRune {
		// Shifted letters already arrive as their uppercase rune.
		mod &^= tcell.ModShift
		if action, ok := p.bindings[binding{mode: mode, mod: mod, key: key, r: r}]; ok {
			return ActionEvent{Action: action, Rune: r}
		}
	} else {
		if action, ok := p.bindings[binding{mode: mode, mod: mod, key: key}]; ok {
			return ActionEvent{Action: action, Rune: r}
		}
	}

	// Per-mode fallbacks for unbound plain runes.
	if key == tcell.KeyRune && mod == tcell.ModNone {
		switch mode {
		case types.ModeMovement:
			if r >= '0' && r <= '9' {
				return ActionEvent{Action: ActionPrefixDigit, Rune: r}
			}
		case types.ModeTyping:
			return ActionEvent{Action: ActionInsertRune, Rune: r}
		case types.ModeCommand:
			return ActionEvent{Action: ActionAppendCommand, Rune: r}
		case types.ModeReplaceChar:
			return ActionEvent{Action: ActionReplaceWith, Rune: r}
		case types.ModeFindChar:
			return ActionEvent{Action: ActionFindTarget, Rune: r}
		}
	}

	return ActionEvent{Action: ActionUnknown, Rune: r}
}
