package ui

import (
	"fmt"
	"strings"

	"github.com/five82/nosleep/internal/toggles"
)

type menuItem struct {
	binding string
	label   string
	checked bool
}

// View implements tea.Model.
func (m Model) View() string {
	styles := m.theme.Styles()
	snap := m.snapshot()
	menu := m.toggles.State()

	var b strings.Builder

	status := statusOf(snap)
	b.WriteString(styles.Title.Render(m.toggles.AppName()))
	b.WriteString("  ")
	b.WriteString(styles.StatusStyle(status).Render(strings.ToUpper(status)))
	b.WriteString("\n\n")

	items := []menuItem{
		{m.keys.ToggleEnabled.Help().Key, toggles.LabelEnabled, menu.Enabled},
		{m.keys.ToggleDisplay.Help().Key, toggles.LabelDisplay, menu.DisplayRequired},
		{m.keys.ToggleRemember.Help().Key, toggles.LabelRemember, menu.RememberEnabledState},
		{m.keys.ToggleAutostart.Help().Key, toggles.LabelAutostart, menu.Autostart},
	}
	for _, item := range items {
		box := styles.FaintText.Render("[ ]")
		if item.checked {
			box = styles.Checked.Render("[x]")
		}
		b.WriteString(box)
		b.WriteString(" ")
		b.WriteString(styles.Key.Render(item.binding))
		b.WriteString(styles.Text.Render(item.label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("mask %s · assertions %d", snap.Mask, snap.Assertions)))
	if snap.LastError != nil {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render("last error: " + snap.LastError.Error()))
	}

	if m.showActivity {
		b.WriteString("\n\n")
		b.WriteString(m.renderActivity(styles))
	}

	body := styles.Frame.Render(b.String())
	return body + "\n" + m.help.View(m.keys) + "\n"
}

func (m Model) renderActivity(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Recent activity"))
	if m.logPath == "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("no log file"))
		return b.String()
	}
	if len(m.activity) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("nothing logged yet"))
		return b.String()
	}
	for _, entry := range m.activity {
		b.WriteString("\n")
		level := styles.MutedText
		if entry.Level == "WARN" || entry.Level == "ERROR" {
			level = styles.DangerText
		}
		b.WriteString(level.Render(fmt.Sprintf("%-5s", entry.Level)))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(entry.Message))
		for _, attr := range entry.Attrs {
			b.WriteString(styles.FaintText.Render(" " + attr.Key + "=" + attr.Value))
		}
	}
	return b.String()
}
