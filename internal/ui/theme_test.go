package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("nope").Name; got != "Dracula" {
		t.Fatalf("GetTheme(nope).Name = %q, want Dracula", got)
	}
}

func TestThemesCoverEveryStatus(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, status := range []string{statusArmed, statusDisarmed, statusDegraded} {
			if th.StatusColors[status] == "" {
				t.Fatalf("theme %s has no color for %q", name, status)
			}
		}
	}
}
