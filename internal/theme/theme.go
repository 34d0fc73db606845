// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/juanjux/neme/internal/logger"
)

// Theme holds the named UI styles: buffer text, selection, gutter and
// status bar variants.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a style name, falling back to the part before the
// first dot, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// HomeRowDark is the built-in theme.
var HomeRowDark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38) // Muted dark blue/grey (status bar)
	foreground := tcell.NewHexColor(0xc5cdd9) // Soft off-white
	gutter := tcell.NewHexColor(0x5c6370)     // Muted grey
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	HomeRowDark = Theme{
		Name:   "HomeRow Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":    baseStyle,
			"Selection":  baseStyle.Reverse(true),
			"LineNumber": baseStyle.Foreground(gutter),

			"StatusBar":         tcell.StyleDefault.Background(background).Foreground(foreground),
			"StatusBarModified": tcell.StyleDefault.Background(background).Foreground(yellow),
			"StatusBarMessage":  tcell.StyleDefault.Background(background).Foreground(foreground).Bold(true),
			"StatusBarCommand":  tcell.StyleDefault.Background(background).Foreground(green).Bold(true),
		},
	}

	CurrentTheme = &HomeRowDark
}

// CurrentTheme is the active theme. Set on init, replaced by SetCurrentTheme.
var CurrentTheme *Theme

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() *Theme {
	if CurrentTheme == nil {
		CurrentTheme = &HomeRowDark
	}
	return CurrentTheme
}

// SetCurrentTheme switches the active theme.
func SetCurrentTheme(theme *Theme) {
	if theme != nil {
		CurrentTheme = theme
		logger.Infof("Theme switched to: %s", theme.Name)
	}
}
