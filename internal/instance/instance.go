// Package instance guarantees a single running NoSleep per user session.
//
// Windows uses a named mutex in the session namespace. Unix-like systems take
// an exclusive non-blocking flock on a file in the runtime directory; the
// kernel drops the lock when the process dies, so a crash never leaves the
// guard stuck.
package instance

import (
	"errors"
	"strings"
)

// Guard is held for the lifetime of the process.
type Guard interface {
	Release() error
}

// ErrInvalidID is returned for identifiers that cannot name a lock.
var ErrInvalidID = errors.New("invalid instance id")

// TryAcquire attempts to become the only instance for id. It returns
// acquired=false (and a nil guard) when another process already holds it.
func TryAcquire(id string) (Guard, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, false, ErrInvalidID
	}
	return tryAcquire(id)
}
