//go:build !windows

package tray

import "context"

// Supported reports whether Run can show a tray icon on this platform.
const Supported = false

// Run always fails with ErrUnsupported.
func Run(context.Context, Options) error {
	return ErrUnsupported
}
