package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/juanjux/neme/internal/config"
	"github.com/juanjux/neme/internal/logger"
	"github.com/juanjux/neme/internal/theme"
)

// registerBuiltinCommands wires the built-in command-line commands.
func (a *App) registerBuiltinCommands() {
	register := func(name string, fn func(args []string) error) {
		if err := a.modeHandler.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register %q command: %v", name, err)
		}
	}

	register("w", func(args []string) error {
		return a.saveCommand()
	})

	register("q", func(args []string) error {
		if a.editor.GetBuffer().IsModified() {
			return fmt.Errorf("unsaved changes (use 'q!' to discard or 'wq' to save)")
		}
		a.modeHandler.RequestQuit()
		return nil
	})

	register("q!", func(args []string) error {
		a.modeHandler.RequestQuit()
		return nil
	})

	register("wq", func(args []string) error {
		if err := a.saveCommand(); err != nil {
			return err
		}
		a.modeHandler.RequestQuit()
		return nil
	})

	register("theme", func(args []string) error {
		if len(args) == 0 {
			a.statusBar.SetTemporaryMessage("Current theme: %s", a.activeTheme.Name)
			return nil
		}
		t, err := theme.LoadThemeFromFile(args[0])
		if err != nil {
			return err
		}
		a.SetTheme(t)
		a.statusBar.SetTemporaryMessage("Theme set to: %s", t.Name)
		return nil
	})
}

// saveCommand writes the buffer out and reports the result.
func (a *App) saveCommand() error {
	path := a.editor.GetBuffer().FilePath()
	if path == "" {
		return fmt.Errorf("buffer has no file path")
	}
	if err := a.editor.SaveBuffer(); err != nil {
		return err
	}
	a.statusBar.SetTemporaryMessage("Buffer saved to %s", path)
	return nil
}

// loadUserTheme replaces the built-in theme with the user's theme file
// when one exists under the config directory.
func loadUserTheme() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return
	}
	path := filepath.Join(configDir, config.ConfigDirName, "theme.toml")
	if _, err := os.Stat(path); err != nil {
		return
	}
	t, err := theme.LoadThemeFromFile(path)
	if err != nil {
		logger.Warnf("Failed to load user theme '%s': %v", path, err)
		return
	}
	theme.SetCurrentTheme(t)
}
