// internal/app/app.go
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/juanjux/neme/internal/buffer"
	"github.com/juanjux/neme/internal/config"
	"github.com/juanjux/neme/internal/core"
	"github.com/juanjux/neme/internal/event"
	"github.com/juanjux/neme/internal/input"
	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/modehandler"
	"github.com/juanjux/neme/internal/statusbar"
	"github.com/juanjux/neme/internal/theme"
	"github.com/juanjux/neme/internal/tui"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	filePath     string
	activeTheme  *theme.Theme

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	loadUserTheme()

	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	buf := buffer.NewSliceBuffer()
	if filePath != "" {
		if err := buf.Load(filePath); err != nil {
			tuiManager.Close()
			return nil, fmt.Errorf("loading '%s' failed: %w", filePath, err)
		}
	}

	eventManager := event.NewManager()

	editor := core.NewEditor(buf)
	editor.SetEventManager(eventManager)
	editor.SetTabWidth(cfg.Editor.TabWidth)
	editor.ScrollOff = cfg.Editor.ScrollOff
	editor.GetClipboardManager().SetUseSystem(cfg.Editor.SystemClipboard)

	inputProcessor := input.NewProcessor()
	statusBar := statusbar.New(statusbar.DefaultConfig())
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Editor:       editor,
		Processor:    inputProcessor,
		EventManager: eventManager,
		StatusBar:    statusBar,
		QuitSignal:   quitChan,
		EditorConfig: cfg.Editor,
	})

	appInstance := &App{
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		modeHandler:   modeHandler,
		filePath:      filePath,
		activeTheme:   theme.GetCurrentTheme(),
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}

	// App-level wiring: keep the status bar in sync with editor state.
	eventManager.Subscribe(event.TypeCursorMoved, appInstance.handleCursorMovedForStatus)
	eventManager.Subscribe(event.TypeBufferModified, appInstance.handleBufferModifiedForStatus)
	eventManager.Subscribe(event.TypeBufferSaved, appInstance.handleBufferSavedForStatus)
	eventManager.Subscribe(event.TypeBufferLoaded, appInstance.handleBufferLoadedForStatus)
	eventManager.Subscribe(event.TypeModeChanged, appInstance.handleModeChangedForStatus)

	appInstance.registerBuiltinCommands()

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)

	if filePath != "" {
		eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath})
	}

	return appInstance, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%s - Space opens the command line, F1 saves", config.AppName)
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			if a.editor.GetBuffer().IsModified() {
				logger.Warnf("Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			w, h := a.tuiManager.Size()
			a.editor.SetViewSize(w, h)
			a.drawEditor()
		}
	}
}

// eventLoop handles TUI events, delegating key events to the ModeHandler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			needsRedraw = true

		case *tcell.EventKey:
			needsRedraw = a.modeHandler.HandleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// SetTheme changes the app's active theme and triggers a redraw.
func (a *App) SetTheme(t *theme.Theme) {
	if t != nil {
		a.activeTheme = t
		theme.SetCurrentTheme(t)
		a.requestRedraw()
	}
}
