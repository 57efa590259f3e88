//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
)

type flockGuard struct {
	file *os.File
}

// lockDir prefers $XDG_RUNTIME_DIR, which is per-user and per-session.
func lockDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}
	return os.TempDir()
}

func tryAcquire(id string) (Guard, bool, error) {
	path := filepath.Join(lockDir(), id+".lock")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, false, fmt.Errorf("open instance lock: %w", err)
	}
	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = file.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("lock %s: %w", path, err)
	}
	_ = file.Truncate(0)
	_, _ = file.WriteString(strconv.Itoa(os.Getpid()) + "\n")
	return &flockGuard{file: file}, true, nil
}

func (g *flockGuard) Release() error {
	if g.file == nil {
		return nil
	}
	_ = syscall.Flock(int(g.file.Fd()), syscall.LOCK_UN)
	err := g.file.Close()
	g.file = nil
	return err
}
