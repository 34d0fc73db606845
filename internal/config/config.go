// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/juanjux/neme/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Embed logger config under [logger] table
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	StatusBarHeight int  `toml:"status_bar_height"`

	// EscapeFirst/EscapeSecond form the typing-mode escape chord. Stored as
	// strings in TOML; only the first rune of each is used.
	EscapeFirst  string `toml:"escape_first"`
	EscapeSecond string `toml:"escape_second"`

	// LineJump is how many lines Backspace/Return move per count in
	// movement mode.
	LineJump int `toml:"line_jump"`
}

// EscapeChord returns the two runes of the typing-mode escape sequence.
func (e *EditorConfig) EscapeChord() (rune, rune) {
	first, second := DefaultEscapeFirst, DefaultEscapeSecond
	if e.EscapeFirst != "" {
		first, _ = utf8.DecodeRuneInString(e.EscapeFirst)
	}
	if e.EscapeSecond != "" {
		second, _ = utf8.DecodeRuneInString(e.EscapeSecond)
	}
	return first, second
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // Empty means stderr
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
			EscapeFirst:     string(DefaultEscapeFirst),
			EscapeSecond:    string(DefaultEscapeSecond),
			LineJump:        DefaultLineJump,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{} // Start empty, we'll merge later
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	if _, err := toml.DecodeFile(filePath, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // Allow 0
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Editor.LineJump <= 0 {
		c.Editor.LineJump = defaults.Editor.LineJump
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	// The chord keys must differ or the chord could never complete.
	first, second := c.Editor.EscapeChord()
	if first == second {
		c.Editor.EscapeFirst = defaults.Editor.EscapeFirst
		c.Editor.EscapeSecond = defaults.Editor.EscapeSecond
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		// Determine effective config file path
		effectivePath := configFilePath
		if effectivePath == "" { // If flag not set, try default location
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err // can't log yet, logger isn't initialized
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" || fileCfg.Logger.LogFilePath != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Editor.TabWidth > 0 {
					cfg.Editor.TabWidth = fileCfg.Editor.TabWidth
				}
				if fileCfg.Editor.ScrollOff >= 0 {
					cfg.Editor.ScrollOff = fileCfg.Editor.ScrollOff
				}
				if fileCfg.Editor.LineJump > 0 {
					cfg.Editor.LineJump = fileCfg.Editor.LineJump
				}
				if fileCfg.Editor.EscapeFirst != "" {
					cfg.Editor.EscapeFirst = fileCfg.Editor.EscapeFirst
				}
				if fileCfg.Editor.EscapeSecond != "" {
					cfg.Editor.EscapeSecond = fileCfg.Editor.EscapeSecond
				}
				cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig
// wasn't called; that is a programming error, not a runtime condition.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
