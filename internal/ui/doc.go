// Package ui provides the terminal menu surface for NoSleep.
//
// # Overview
//
// The menu is a small Bubble Tea program that mirrors the tray menu: four
// checkable toggles plus Close. It is used on platforms without a tray and
// whenever the config selects surface = "terminal".
//
// # Event Flow
//
// The Bubble Tea program goroutine owns the engine. Key presses call into
// toggles.Toggles, and refresh ticks arrive as refreshMsg values produced by
// tea.Tick:
//
//  1. The engine calls Ticker.Start when it arms
//  2. After each update the model drains the pending start into a tea.Tick
//  3. Each accepted refreshMsg calls RefreshTick and schedules the next tick
//
// Every Start or Stop bumps the ticker generation. A tick already in flight
// when the engine disarms carries the old generation and is dropped, so no
// assertion happens after a disarm.
//
// # Key Bindings
//
//   - e: Enabled
//   - d: Keep screen on
//   - r: Remember enabled state
//   - a: Autostart at login
//   - l: Recent activity from the log file
//   - T: Cycle theme (persisted)
//   - ?: Toggle help
//   - q or Ctrl+C: Close
package ui
