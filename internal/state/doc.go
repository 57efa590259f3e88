// Package state keeps a thread-safe record of what the arming engine last did.
//
// # Overview
//
// The engine itself is owned by a single goroutine and is not safe to read
// from elsewhere. It reports every assertion and arming transition to a
// Store, and anything else (tray tooltip, terminal status line, shutdown
// logging) reads a Snapshot instead of touching the engine.
//
// # Core Types
//
// Store:
//   - Implements engine.Recorder
//   - Uses sync.RWMutex for concurrent access
//   - Safe to use as a zero value
//
// Snapshot:
//   - Armed flag and the mask in effect
//   - Time of the last successful assertion
//   - Last error and the count of consecutive failures
//
// # Failure Tracking
//
// A failed assertion keeps LastAsserted unchanged and bumps
// ConsecutiveFailures. A success resets the counter. Disarming also resets
// it, since nothing is being asserted any more. IsDegraded reports two or
// more failures in a row, which surfaces show as a warning.
//
// Snapshot copies the error value so callers never share it with the store.
package state
