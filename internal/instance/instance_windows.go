//go:build windows

package instance

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

type mutexGuard struct {
	handle windows.Handle
}

func tryAcquire(id string) (Guard, bool, error) {
	name, err := windows.UTF16PtrFromString(`Local\` + id)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	// Unowned; the named object's existence is the guard.
	handle, err := windows.CreateMutex(nil, false, name)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		if handle != 0 {
			_ = windows.CloseHandle(handle)
		}
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("create instance mutex: %w", err)
	}
	return &mutexGuard{handle: handle}, true, nil
}

func (g *mutexGuard) Release() error {
	if g.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(g.handle)
	g.handle = 0
	return err
}
