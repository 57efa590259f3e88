package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/nosleep/internal/toggles"
)

// keyMap defines all keyboard bindings for the menu.
type keyMap struct {
	ToggleEnabled   key.Binding
	ToggleDisplay   key.Binding
	ToggleRemember  key.Binding
	ToggleAutostart key.Binding

	Activity   key.Binding
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		ToggleEnabled: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", toggles.LabelEnabled),
		),
		ToggleDisplay: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", toggles.LabelDisplay),
		),
		ToggleRemember: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", toggles.LabelRemember),
		),
		ToggleAutostart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", toggles.LabelAutostart),
		),
		Activity: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Recent activity"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", toggles.LabelClose),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleEnabled, k.ToggleDisplay, k.ToggleRemember, k.ToggleAutostart},
		{k.Activity, k.CycleTheme, k.Help, k.Quit},
	}
}
