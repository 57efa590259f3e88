package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/nosleep/internal/execstate"
)

// Snapshot represents the latest engine status available to the surfaces.
type Snapshot struct {
	Armed               bool
	Mask                execstate.Mask
	LastAsserted        time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed assertions
	Assertions          int // Total assertion attempts
}

// IsDegraded returns true when the OS has rejected several assertions in a row.
func (s Snapshot) IsDegraded() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// RecordAssertion records one assertion attempt. When err is non-nil the
// previous success time is kept but the error is recorded for visibility.
func (s *Store) RecordAssertion(mask execstate.Mask, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Assertions++
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.LastAsserted = time.Now()
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// RecordArmed records an arming transition and the mask it applies to.
func (s *Store) RecordArmed(armed bool, mask execstate.Mask) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Armed = armed
	s.snapshot.Mask = mask
	if !armed {
		s.snapshot.ConsecutiveFailures = 0
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
