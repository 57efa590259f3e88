package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the terminal menu.
type Theme struct {
	Name string

	Background string
	Surface    string
	Border     string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Keyed by engine status: armed, disarmed, degraded.
	StatusColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Width(4),

		Checked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		statusColors: t.StatusColors,
		background:   t.Background,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Frame      lipgloss.Style
	Title      lipgloss.Style
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	Key        lipgloss.Style
	Checked    lipgloss.Style
	DangerText lipgloss.Style

	statusColors map[string]string
	background   string
}

// StatusStyle returns a badge style for the given engine status.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	color := s.statusColors[status]
	if color == "" {
		color = "#6272A4"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func draculaTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dracula",

		Background: "#191A21", // BGDarker
		Surface:    "#282A36", // Background
		Border:     "#44475A", // Selection

		Text:    "#F8F8F2", // Foreground
		Muted:   "#6272A4", // Comment
		Faint:   "#44475A", // Selection
		Accent:  "#BD93F9", // Purple
		Success: "#50FA7B", // Green
		Warning: "#FFB86C", // Orange
		Danger:  "#FF5555", // Red

		StatusColors: map[string]string{
			statusArmed:    "#50FA7B", // Green
			statusDisarmed: "#6272A4", // Comment
			statusDegraded: "#FF5555", // Red
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Border:     "#334155", // slate-700

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500

		StatusColors: map[string]string{
			statusArmed:    "#22c55e", // green-500
			statusDisarmed: "#64748b", // slate-500
			statusDegraded: "#dc2626", // red-600
		},
	}
}
