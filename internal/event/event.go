// internal/event/event.go
package event

import (
	"github.com/gdamore/tcell/v2"

	"github.com/juanjux/neme/internal/types"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Editor Events
	TypeBufferModified // Fired when buffer content changes (insert/delete)
	TypeBufferLoaded   // Fired after a buffer is successfully loaded
	TypeBufferSaved    // Fired after a buffer is successfully saved
	TypeCursorMoved    // Fired when the cursor position changes
	TypeModeChanged    // Fired when the editor mode actually changes

	// Input Events
	TypeKeyPressed // Raw key press event forwarded

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// BufferModifiedData signals a content change.
type BufferModifiedData struct{}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// ModeChangedData contains the mode that was just entered. Dispatched
// exactly once per actual mode change.
type ModeChangedData struct {
	Mode types.EditorMode
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
