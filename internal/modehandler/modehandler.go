// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/juanjux/neme/internal/config"
	"github.com/juanjux/neme/internal/core"
	"github.com/juanjux/neme/internal/event"
	"github.com/juanjux/neme/internal/input"
	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/statusbar"
	"github.com/juanjux/neme/internal/types"
)

// CommandFunc is a named command callable from command mode.
type CommandFunc func(args []string) error

// ModeHandler owns the editor mode state machine: it resolves key events
// into actions for the active mode and executes them against the editor.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	editor       *core.Editor
	processor    *input.Processor
	eventManager *event.Manager
	statusBar    *statusbar.StatusBar
	quitSignal   chan<- struct{}
	editorCfg    config.EditorConfig

	// Internal state
	currentMode   types.EditorMode
	prefix        NumberPrefix
	cmdBuffer     string
	commands      map[string]CommandFunc
	escapePending bool            // First chord key just inserted while typing
	findDirection types.Direction // Direction armed for find-char mode
	replaceRepeat int             // Count armed for replace-char mode
	quitRequested bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor       *core.Editor
	Processor    *input.Processor
	EventManager *event.Manager
	StatusBar    *statusbar.StatusBar
	QuitSignal   chan<- struct{}
	EditorConfig config.EditorConfig
}

// New creates a new ModeHandler. The editor starts in movement mode.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.Processor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	mh := &ModeHandler{
		editor:        cfg.Editor,
		processor:     cfg.Processor,
		eventManager:  cfg.EventManager,
		statusBar:     cfg.StatusBar,
		quitSignal:    cfg.QuitSignal,
		editorCfg:     cfg.EditorConfig,
		currentMode:   types.ModeMovement,
		commands:      make(map[string]CommandFunc),
		replaceRepeat: 1,
		findDirection: types.DirRight,
	}
	mh.statusBar.SetEditorMode(mh.currentMode.String())
	return mh
}

// HandleKeyEvent resolves and executes one key event for the active mode.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	originalCursor := mh.editor.GetCursor()
	actionEvent := mh.processor.Resolve(mh.currentMode, ev)

	var actionProcessed bool
	switch mh.currentMode {
	case types.ModeMovement:
		actionProcessed = mh.handleMovement(actionEvent)
	case types.ModeTyping:
		actionProcessed = mh.handleTyping(actionEvent)
	case types.ModeCommand:
		actionProcessed = mh.handleCommand(actionEvent)
	case types.ModeReplaceChar:
		actionProcessed = mh.handleReplaceChar(actionEvent)
	case types.ModeFindChar:
		actionProcessed = mh.handleFindChar(actionEvent)
	default:
		logger.Debugf("ModeHandler: Unknown mode: %v", mh.currentMode)
	}

	newCursor := mh.editor.GetCursor()
	if newCursor != originalCursor {
		mh.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: newCursor})
	}
	return actionProcessed
}

// SetMode switches the editor mode, applying the per-mode caret and
// read-only side effects. The mode-changed event fires only on an actual
// change, so repeated calls with the same mode are observably idempotent.
func (mh *ModeHandler) SetMode(mode types.EditorMode) {
	changed := mode != mh.currentMode
	mh.currentMode = mode

	switch mode {
	case types.ModeTyping:
		mh.editor.SetReadOnly(false)
		mh.editor.SetCaretStyle(types.CaretBar)
	default:
		mh.editor.SetReadOnly(true)
		mh.editor.SetCaretStyle(types.CaretBlock)
	}
	if mode != types.ModeTyping {
		mh.escapePending = false
	}
	mh.statusBar.SetEditorMode(mode.String())

	if changed {
		logger.DebugTagf("mode", "Mode changed to %v", mode)
		mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: mode})
	}
}

// CurrentMode returns the active editor mode.
func (mh *ModeHandler) CurrentMode() types.EditorMode {
	return mh.currentMode
}

// CommandBuffer returns the partial command line, for display.
func (mh *ModeHandler) CommandBuffer() string {
	if mh.currentMode == types.ModeCommand {
		return mh.cmdBuffer
	}
	return ""
}

// PendingCount returns the typed number prefix, for display.
func (mh *ModeHandler) PendingCount() string {
	return mh.prefix.String()
}

// RegisterCommand adds a named command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command %q", name)
	return nil
}

// executeCommand parses and runs the command in cmdBuffer.
func (mh *ModeHandler) executeCommand() {
	if mh.cmdBuffer == "" {
		mh.statusBar.ResetTemporaryMessage()
		return
	}
	cmdStr := mh.cmdBuffer
	mh.cmdBuffer = ""

	parts := strings.Fields(cmdStr)
	cmdName := parts[0]
	args := parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.Debugf("ModeHandler: Executing command %q with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Command %q failed: %v", cmdName, err)
	}
}

// save writes the buffer out and reports the result on the status bar.
func (mh *ModeHandler) save() bool {
	path := mh.editor.GetBuffer().FilePath()
	if path == "" {
		path = "[No Name]"
	}
	if err := mh.editor.SaveBuffer(); err != nil {
		mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
		return false
	}
	mh.statusBar.SetTemporaryMessage("Buffer saved to %s", path)
	return true
}

// RequestQuit signals the app loop to terminate, at most once.
func (mh *ModeHandler) RequestQuit() {
	if mh.quitRequested {
		return
	}
	mh.quitRequested = true
	mh.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	close(mh.quitSignal)
}
