package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Surface selects the control surface.
type Surface string

const (
	SurfaceTray     Surface = "tray"
	SurfaceTerminal Surface = "terminal"
)

// Config captures process-level settings that are not user toggles.
type Config struct {
	Surface    Surface
	LogLevel   string
	LogFile    string
	PrefsPath  string
	InstanceID string
}

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "NOSLEEP_CONFIG"

const (
	defaultConfigPath = "~/.config/nosleep/config.toml"
	defaultLogFile    = "~/.local/state/nosleep/nosleep.log"
	defaultLogLevel   = "info"
	defaultInstanceID = "nosleep-6f0d3c2e-5b7a-4d1e-9a38-2c4b8e71f05d"
)

// DefaultSurface is the tray on Windows and the terminal menu elsewhere.
func DefaultSurface() Surface {
	if runtime.GOOS == "windows" {
		return SurfaceTray
	}
	return SurfaceTerminal
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		Surface:    DefaultSurface(),
		LogLevel:   defaultLogLevel,
		LogFile:    mustExpand(defaultLogFile),
		InstanceID: defaultInstanceID,
	}
}

// ResolvePath picks the config path: explicit argument, then $NOSLEEP_CONFIG,
// then the default location.
func ResolvePath(path string) string {
	if strings.TrimSpace(path) != "" {
		return path
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return env
	}
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := expandPath(ResolvePath(path))
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Surface    string `toml:"surface"`
		LogLevel   string `toml:"log_level"`
		LogFile    string `toml:"log_file"`
		PrefsPath  string `toml:"prefs_path"`
		InstanceID string `toml:"instance_id"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	switch surface := Surface(strings.ToLower(strings.TrimSpace(raw.Surface))); surface {
	case "":
	case SurfaceTray, SurfaceTerminal:
		cfg.Surface = surface
	default:
		return Config{}, fmt.Errorf("parse config: unknown surface %q", raw.Surface)
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if prefsPath := strings.TrimSpace(raw.PrefsPath); prefsPath != "" {
		cfg.PrefsPath = mustExpand(prefsPath)
	}
	if id := strings.TrimSpace(raw.InstanceID); id != "" {
		cfg.InstanceID = id
	}

	return cfg, nil
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
