// Package app is the composition root for NoSleep.
//
// # Overview
//
// Run wires configuration, logging, the single-instance guard, preferences,
// the OS asserter, the arming engine and a control surface, then blocks
// while the surface runs.
//
// # Startup Order
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read config.toml (or defaults)
//	       ├─────> instance.TryAcquire()  Second instance: notice, return nil
//	       ├─────> logging.Open()         Log file; a tray has no console
//	       ├─────> prefs.Open()           Load prefs, upgrade old schema once
//	       ├─────> engine.New()           Disarmed, with the stored mask
//	       ├─────> toggles.Start()        Arm unless remembered as disabled
//	       └─────> Surface.Run()          Tray or terminal menu (blocks)
//
// Shutdown runs in reverse: the engine is disarmed (releasing the continuous
// assertion), then the guard is released.
//
// # Concurrency
//
// The engine is not safe for concurrent use. It is built and started on the
// calling goroutine, then handed to the surface, whose event loop is its only
// user until Run returns.
//
// # Error Handling
//
// Fatal (returned from Run):
//   - Malformed config or unknown log level
//   - Log file cannot be opened
//   - Instance guard cannot be created
//   - Surface failure
//
// Recoverable (logged, the process keeps running):
//   - Preference upgrade or save failures
//   - Refused OS assertions
//   - Missing autostart support
package app
