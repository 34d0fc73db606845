package config

import "time"

// Base application details
const AppName = "neme"
const ConfigDirName = "neme"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "neme.log"

// UI Layout
const StatusBarHeight = 1

// Input Behavior. The escape chord is the two-key sequence that leaves
// typing mode without reaching for Escape.
const DefaultEscapeFirst = 'k'
const DefaultEscapeSecond = 'j'

// Backspace/Return in movement mode jump this many lines per count.
const DefaultLineJump = 5

// Status Bar
const MessageTimeout = 4 * time.Second

// These could be moved to NewDefaultConfig(), keeping here for now
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = false
