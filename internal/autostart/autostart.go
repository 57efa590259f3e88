// Package autostart manages the per-user login launch entry: a shortcut in
// the user's Startup folder pointing at the running executable.
package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnsupported is returned where no shortcut mechanism exists.
var ErrUnsupported = errors.New("autostart is not supported on this platform")

// Linker writes a shortcut at path that launches target.
type Linker interface {
	CreateShortcut(target, path string) error
}

// Registrar creates and removes <Dir>/<AppName>.lnk.
type Registrar struct {
	Dir     string
	AppName string
	Target  string
	Linker  Linker
}

// NewDefault returns a Registrar for the current user's Startup folder and
// the running executable.
func NewDefault(appName string) (*Registrar, error) {
	target, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	dir, err := startupDir()
	if err != nil {
		return nil, err
	}
	return &Registrar{
		Dir:     dir,
		AppName: appName,
		Target:  target,
		Linker:  defaultLinker(),
	}, nil
}

// ShortcutPath returns where the launch entry lives.
func (r *Registrar) ShortcutPath() string {
	return filepath.Join(r.Dir, r.AppName+".lnk")
}

// IsRegistered reports whether the shortcut exists.
func (r *Registrar) IsRegistered() bool {
	_, err := os.Stat(r.ShortcutPath())
	return err == nil
}

// Register creates the shortcut.
func (r *Registrar) Register() error {
	if r.Linker == nil {
		return ErrUnsupported
	}
	path := r.ShortcutPath()
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("create autostart shortcut at '%s': %w", path, err)
	}
	if err := r.Linker.CreateShortcut(r.Target, path); err != nil {
		return fmt.Errorf("create autostart shortcut at '%s': %w", path, err)
	}
	return nil
}

// Unregister removes the shortcut. A missing shortcut is not an error.
func (r *Registrar) Unregister() error {
	path := r.ShortcutPath()
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove autostart shortcut from '%s': %w", path, err)
	}
	return nil
}
