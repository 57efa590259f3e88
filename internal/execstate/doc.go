// Package execstate defines the closed set of keep-awake reasons asserted to the
// operating system's idle timers.
//
// A Mask is a plain value. The vocabulary is fixed at four flags whose bit
// values match the Windows SetThreadExecutionState flags, so a Mask can be
// handed to the OS primitive without translation:
//
//	SystemRequired   0x00000001  keep the system in the working state
//	DisplayRequired  0x00000002  keep the display on
//	AwayModeRequired 0x00000040  away mode, only meaningful with Continuous
//	Continuous       0x80000000  assertion persists until explicitly replaced
//
// The "user present" bit is intentionally absent; combining it with any other
// flag makes the OS call fail.
//
// All operations are pure:
//
//	m := execstate.Default
//	m = execstate.EnableFlag(m, execstate.DisplayRequired)
//	m = execstate.DisableFlag(m, execstate.DisplayRequired)
//	execstate.Contains(m, execstate.Continuous) // true
package execstate
