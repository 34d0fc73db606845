package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/juanjux/neme/internal/types"
)

func runeEvent(r rune, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, mod)
}

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func TestResolveMovementBindings(t *testing.T) {
	p := NewProcessor()

	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"typing switch", runeEvent('t', tcell.ModNone), ActionEnterTyping},
		{"move up", runeEvent('i', tcell.ModNone), ActionMoveUp},
		{"move down", runeEvent('k', tcell.ModNone), ActionMoveDown},
		{"move left", runeEvent('j', tcell.ModNone), ActionMoveLeft},
		{"move right", runeEvent('l', tcell.ModNone), ActionMoveRight},
		{"command mode", runeEvent(' ', tcell.ModNone), ActionEnterCommandMode},
		{"word forward", runeEvent('w', tcell.ModNone), ActionWordForward},
		{"big word forward shifted", runeEvent('W', tcell.ModShift), ActionBigWordForward},
		{"prev word end", runeEvent('e', tcell.ModAlt), ActionPrevWordEnd},
		{"undo", runeEvent('u', tcell.ModNone), ActionUndo},
		{"redo", runeEvent('u', tcell.ModAlt), ActionRedo},
		{"line jump up", keyEvent(tcell.KeyBackspace2), ActionLineJumpUp},
		{"line jump down", keyEvent(tcell.KeyEnter), ActionLineJumpDown},
		{"save", keyEvent(tcell.KeyF1), ActionSave},
		{"save quit", keyEvent(tcell.KeyF3), ActionSaveQuit},
		{"search word", runeEvent('*', tcell.ModNone), ActionSearchWordForward},
		{"digit prefix", runeEvent('3', tcell.ModNone), ActionPrefixDigit},
		{"zero prefix", runeEvent('0', tcell.ModNone), ActionPrefixDigit},
		{"unbound rune", runeEvent('ñ', tcell.ModNone), ActionUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := p.Resolve(types.ModeMovement, c.ev)
			if got.Action != c.want {
				t.Errorf("Resolve(%s) = %v, want %v", c.name, got.Action, c.want)
			}
		})
	}
}

func TestResolveCtrlNormalization(t *testing.T) {
	p := NewProcessor()

	// Terminals deliver Ctrl+K as the KeyCtrlK code, with or without the
	// modifier bit set; both forms must resolve.
	withMod := tcell.NewEventKey(tcell.KeyCtrlK, 0, tcell.ModCtrl)
	withoutMod := tcell.NewEventKey(tcell.KeyCtrlK, 0, tcell.ModNone)
	for _, ev := range []*tcell.EventKey{withMod, withoutMod} {
		if got := p.Resolve(types.ModeMovement, ev).Action; got != ActionMovePageDown {
			t.Errorf("Ctrl+K = %v, want ActionMovePageDown", got)
		}
	}

	// Tab shares its code with Ctrl+I and must stay a plain Tab.
	if got := p.Resolve(types.ModeTyping, keyEvent(tcell.KeyTab)).Action; got != ActionInsertTab {
		t.Errorf("Tab while typing = %v, want ActionInsertTab", got)
	}
	if got := p.Resolve(types.ModeMovement, keyEvent(tcell.KeyTab)).Action; got != ActionMovePageUp {
		t.Errorf("Tab in movement = %v, want ActionMovePageUp", got)
	}
}

func TestResolveTypingFallback(t *testing.T) {
	p := NewProcessor()

	got := p.Resolve(types.ModeTyping, runeEvent('q', tcell.ModNone))
	if got.Action != ActionInsertRune || got.Rune != 'q' {
		t.Errorf("typing 'q' = %v/%q, want ActionInsertRune/'q'", got.Action, got.Rune)
	}

	// Movement bindings must not leak into typing mode.
	got = p.Resolve(types.ModeTyping, runeEvent('w', tcell.ModNone))
	if got.Action != ActionInsertRune {
		t.Errorf("typing 'w' = %v, want ActionInsertRune", got.Action)
	}

	// Alt+home-row arrows work while typing.
	if got := p.Resolve(types.ModeTyping, runeEvent('k', tcell.ModAlt)).Action; got != ActionMoveDown {
		t.Errorf("Alt+k while typing = %v, want ActionMoveDown", got)
	}
}

func TestResolveSingleKeyModes(t *testing.T) {
	p := NewProcessor()

	got := p.Resolve(types.ModeReplaceChar, runeEvent('z', tcell.ModNone))
	if got.Action != ActionReplaceWith || got.Rune != 'z' {
		t.Errorf("replace target = %v/%q, want ActionReplaceWith/'z'", got.Action, got.Rune)
	}

	got = p.Resolve(types.ModeFindChar, runeEvent('.', tcell.ModNone))
	if got.Action != ActionFindTarget || got.Rune != '.' {
		t.Errorf("find target = %v/%q, want ActionFindTarget/'.'", got.Action, got.Rune)
	}

	if got := p.Resolve(types.ModeFindChar, keyEvent(tcell.KeyEscape)).Action; got != ActionCancelPending {
		t.Errorf("escape in find-char = %v, want ActionCancelPending", got)
	}
}

func TestResolveCommandMode(t *testing.T) {
	p := NewProcessor()

	if got := p.Resolve(types.ModeCommand, keyEvent(tcell.KeyEnter)).Action; got != ActionExecuteCommand {
		t.Errorf("Enter = %v, want ActionExecuteCommand", got)
	}
	if got := p.Resolve(types.ModeCommand, keyEvent(tcell.KeyEscape)).Action; got != ActionCancelCommand {
		t.Errorf("Escape = %v, want ActionCancelCommand", got)
	}
	got := p.Resolve(types.ModeCommand, runeEvent('w', tcell.ModNone))
	if got.Action != ActionAppendCommand || got.Rune != 'w' {
		t.Errorf("rune = %v/%q, want ActionAppendCommand/'w'", got.Action, got.Rune)
	}
}
