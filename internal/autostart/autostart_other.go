//go:build !windows

package autostart

import (
	"os"
	"path/filepath"
)

// There is no Startup folder outside Windows. The directory below only gives
// IsRegistered something to look at; Register always fails.
func startupDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nosleep", "autostart"), nil
}

func defaultLinker() Linker {
	return unsupportedLinker{}
}

type unsupportedLinker struct{}

func (unsupportedLinker) CreateShortcut(string, string) error {
	return ErrUnsupported
}
