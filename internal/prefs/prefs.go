// Package prefs handles NoSleep user preference persistence.
// Preferences are stored in ~/.config/nosleep/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for NoSleep.
type Prefs struct {
	SchemaVersion     int    `toml:"schema_version"`
	DisplayRequired   bool   `toml:"display_required"`
	SaveEnabledState  bool   `toml:"save_enabled_state"`
	EnabledState      bool   `toml:"enabled_state"`
	RefreshIntervalMs int    `toml:"refresh_interval_ms"`
	AppName           string `toml:"app_name"`
	Theme             string `toml:"theme"`
}

const (
	defaultPrefsPath         = "~/.config/nosleep/prefs.toml"
	defaultAppName           = "NoSleep"
	defaultTheme             = "Dracula"
	defaultRefreshIntervalMs = 10000

	// CurrentSchema is bumped whenever a key is added.
	CurrentSchema = 2
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{
		SchemaVersion:     CurrentSchema,
		DisplayRequired:   true,
		SaveEnabledState:  false,
		EnabledState:      true,
		RefreshIntervalMs: defaultRefreshIntervalMs,
		AppName:           defaultAppName,
		Theme:             defaultTheme,
	}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// RefreshInterval returns the refresh interval as a duration.
func (p Prefs) RefreshInterval() time.Duration {
	if p.RefreshIntervalMs <= 0 {
		return defaultRefreshIntervalMs * time.Millisecond
	}
	return time.Duration(p.RefreshIntervalMs) * time.Millisecond
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	p, _, err := load(path)
	return p, err
}

// load also reports whether the stored file predates CurrentSchema.
func load(path string) (Prefs, bool, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), false, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), false, nil
		}
		return Defaults(), false, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Defaults(), false, nil // Graceful degradation
	}

	// Missing keys keep their defaults.
	p := Defaults()
	p.SchemaVersion = 0
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults(), false, nil // Graceful degradation
	}

	upgrade := p.SchemaVersion < CurrentSchema
	normalize(&p)
	return p, upgrade, nil
}

func normalize(p *Prefs) {
	if p.RefreshIntervalMs <= 0 {
		p.RefreshIntervalMs = defaultRefreshIntervalMs
	}
	if strings.TrimSpace(p.AppName) == "" {
		p.AppName = defaultAppName
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	if p.SchemaVersion < CurrentSchema {
		p.SchemaVersion = CurrentSchema
	}
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
