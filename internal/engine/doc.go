// Package engine owns the keep-awake assertion and its periodic refresh.
//
// # State machine
//
// An Engine is either Disarmed or Armed:
//
//	Disarmed --Arm()---------> Armed
//	Armed    --Disarm()------> Disarmed
//	Armed    --RefreshTick()-> Armed        (re-asserts the mask)
//	Armed    --SetFlag()-----> Disarmed -> Armed
//	Disarmed --SetFlag()-----> Disarmed     (mask only, no OS call)
//
// "Timer running" and "armed" are the same thing: Arm starts the Ticker,
// Disarm stops it.
//
// # Release protocol
//
// A continuous assertion stays in effect until it is replaced by another
// continuous call. Disarm therefore issues one Continuous-only call when the
// mask being released carries the Continuous marker. Masks without it are
// transient and simply expire, so no release call is made for them.
//
// SetFlag never edits the live assertion in place. The OS has no atomic
// modify and the release depends on the previous mask, so a flag change
// while armed is a Disarm of the old mask followed by an Arm of the new one.
//
// # Threading
//
// An Engine is not safe for concurrent use. Exactly one goroutine (the
// surface's event loop) owns it and delivers ticks back through RefreshTick.
// ChannelTicker lets a select loop do that; the terminal surface uses
// bubbletea ticks instead.
//
// # Failures
//
// Assertion errors are logged and handed to the Recorder, never returned.
// The next tick tries again.
package engine
