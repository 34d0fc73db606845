// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation

	"github.com/juanjux/neme/internal/config"
	"github.com/juanjux/neme/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleModified  tcell.Style // Style for the modified indicator
	StyleMessage   tcell.Style // Style for temporary messages
	StyleCommand   tcell.Style // Style for the command-mode input line
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleCommand:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: config.MessageTimeout,
	}
}

// StatusBar represents the UI component for the status line. It shows the
// active mode, the file, the cursor position and the pending count, or a
// temporary message while one is fresh.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields

	filePath     string
	cursorPos    types.Position
	isModified   bool
	editorMode   string
	pendingCount string

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetEditorMode updates the displayed editor mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetPendingCount updates the displayed number prefix.
func (sb *StatusBar) SetPendingCount(count string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.pendingCount = count
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// TemporaryMessage returns the active message, empty when expired.
func (sb *StatusBar) TemporaryMessage() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if sb.tempMessageTime.IsZero() || time.Since(sb.tempMessageTime) > sb.config.MessageTimeout {
		return ""
	}
	return sb.tempMessage
}

// getDefaultDisplayText builds the default status line text.
func (sb *StatusBar) getDefaultDisplayText() string {
	// Assumes the lock is held by the caller.
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}

	modeIndicator := ""
	if sb.editorMode != "" {
		modeIndicator = fmt.Sprintf(" -- %s", sb.editorMode)
	}
	countIndicator := ""
	if sb.pendingCount != "" {
		countIndicator = fmt.Sprintf(" (%s)", sb.pendingCount)
	}

	cursor := sb.cursorPos
	return fmt.Sprintf("%s%s -- Line: %d, Col: %d%s%s",
		fPath, modifiedIndicator, cursor.Line+1, cursor.Col+1, modeIndicator, countIndicator)
}

// Draw renders the status bar onto the screen using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1 // Status bar is always the last line

	sb.mu.Lock()
	// Clear expired temporary message *before* getting display text
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	isCommandInput := isTempMsgActive && len(sb.tempMessage) > 0 && sb.tempMessage[0] == '>'

	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string

	if isTempMsgActive {
		text = sb.tempMessage
		if isCommandInput {
			style = sb.config.StyleCommand
		} else {
			style = sb.config.StyleMessage
		}
	} else {
		text = sb.getDefaultDisplayText()
		style = sb.config.StyleDefault
	}

	sb.mu.Unlock()

	// Fill background first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	// Draw text using uniseg for width calculation
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break // Stop if cluster doesn't fit
		}

		runes := gr.Runes()
		if len(runes) > 0 {
			mainRune := runes[0]
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, mainRune, combiningRunes, style)
		}

		currentX += clusterWidth
	}
}
