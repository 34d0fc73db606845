// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	ConfigFilePath  *string
	LogLevel        *string
	LogFilePath     *string
	TabWidth        *int
	ScrollOff       *int
	EnableTags      *string
	DisableTags     *string
	SystemClipboard *bool
}

// DefineFlags sets up the command-line flags and associates them with the
// Flags struct fields.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.TabWidth = flag.Int("tabwidth", 0, "Number of spaces per tab - Overrides config file")               // Use 0 to indicate unset
	f.ScrollOff = flag.Int("scrolloff", -1, "Lines of context above/below cursor - Overrides config file") // Use -1 to indicate unset
	f.EnableTags = flag.String("log-tags", "", "Comma-separated list of debug tags to enable - Overrides config file")
	f.DisableTags = flag.String("log-disable-tags", "", "Comma-separated list of debug tags to disable - Overrides config file")
	f.SystemClipboard = flag.Bool("system-clipboard", false, "Use the system clipboard instead of the internal register")
}

// ParseFlags parses the defined command-line flags into the Flags struct.
// It returns the remaining non-flag arguments (e.g., the file path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config struct with values from flags *if* they
// were set on the command line.
func (f *Flags) ApplyOverrides(cfg *Config) {
	// Visit only processes flags that were actually set
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil { // Empty string is valid ("-")
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "tabwidth":
			if f.TabWidth != nil && *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if f.ScrollOff != nil && *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "system-clipboard":
			if f.SystemClipboard != nil {
				cfg.Editor.SystemClipboard = *f.SystemClipboard
			}
		case "log-tags":
			if f.EnableTags != nil && *f.EnableTags != "" {
				cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
			}
		case "log-disable-tags":
			if f.DisableTags != nil && *f.DisableTags != "" {
				cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
			}
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
