package execstate

import "strings"

// Mask is a set of keep-awake flags.
type Mask uint32

const (
	SystemRequired   Mask = 0x00000001
	DisplayRequired  Mask = 0x00000002
	AwayModeRequired Mask = 0x00000040
	Continuous       Mask = 0x80000000
)

// None is the empty mask. It is never sent to the OS.
const None Mask = 0

const vocabulary = SystemRequired | DisplayRequired | AwayModeRequired | Continuous

// Default keeps the system awake in away mode without forcing the display on.
const Default = SystemRequired | AwayModeRequired | Continuous

// ReleaseMask hands idle timers back to the OS after a continuous assertion.
const ReleaseMask = Continuous

var names = []struct {
	flag Mask
	name string
}{
	{SystemRequired, "SystemRequired"},
	{DisplayRequired, "DisplayRequired"},
	{AwayModeRequired, "AwayModeRequired"},
	{Continuous, "Continuous"},
}

// EnableFlag returns m with flag set.
func EnableFlag(m, flag Mask) Mask {
	return m | flag
}

// DisableFlag returns m with flag cleared.
func DisableFlag(m, flag Mask) Mask {
	return m &^ flag
}

// ToggleFlag returns m with flag flipped.
func ToggleFlag(m, flag Mask) Mask {
	return m ^ flag
}

// Contains reports whether every bit of flag is set in m.
func Contains(m, flag Mask) bool {
	return m&flag == flag
}

// FromPreferences builds the mask asserted for the given display preference.
func FromPreferences(displayRequired bool) Mask {
	if displayRequired {
		return EnableFlag(Default, DisplayRequired)
	}
	return Default
}

// Has is shorthand for Contains(m, flag).
func (m Mask) Has(flag Mask) bool {
	return Contains(m, flag)
}

// Valid reports whether m only uses the known vocabulary and never asks for
// away mode without the continuous marker.
func (m Mask) Valid() bool {
	if m&^vocabulary != 0 {
		return false
	}
	if m.Has(AwayModeRequired) && !m.Has(Continuous) {
		return false
	}
	return true
}

func (m Mask) String() string {
	if m == None {
		return "None"
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if m.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if rest := m &^ vocabulary; rest != 0 {
		parts = append(parts, "Unknown")
	}
	return strings.Join(parts, "|")
}
