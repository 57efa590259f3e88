// Package config loads NoSleep's process-level configuration.
//
// # Overview
//
// User toggles (enabled, keep screen on, remember state) live in the prefs
// package. This package covers the settings a user rarely touches: which
// control surface to run, where to log, and the single-instance identifier.
// The process takes no command-line arguments, so the file is the only knob.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use $NOSLEEP_CONFIG when set
//  3. Otherwise, use ~/.config/nosleep/config.toml (default)
//  4. If the config file doesn't exist, fall back to hardcoded defaults
//  5. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	surface = "tray"          # or "terminal"
//	log_level = "info"        # debug, info, warn, error
//	log_file = "~/.local/state/nosleep/nosleep.log"
//	prefs_path = "~/.config/nosleep/prefs.toml"
//	instance_id = "nosleep-..."
//
// All fields are optional. Tilde expansion is performed for paths.
//
// # Default Values
//
//   - surface: tray on Windows, terminal elsewhere
//   - log_level: info
//   - log_file: ~/.local/state/nosleep/nosleep.log
//   - prefs_path: empty, meaning the prefs package default
//
// # Error Handling
//
// Missing files are not an error. Unreadable files, malformed TOML and an
// unknown surface name are.
package config
