// Package tray is the notification-area surface: an icon whose menu carries
// the four toggles and Close.
//
// One dispatch goroutine owns the engine while the tray runs. It selects on
// the menu click channels, the engine's ChannelTicker and shutdown, so a
// click and a refresh tick are never handled concurrently.
package tray

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/five82/nosleep/internal/engine"
	"github.com/five82/nosleep/internal/execstate"
	"github.com/five82/nosleep/internal/state"
	"github.com/five82/nosleep/internal/toggles"
)

// ErrUnsupported is returned by Run where no tray implementation exists.
var ErrUnsupported = errors.New("tray not supported on this platform")

type menuEntry struct {
	label string
	hint  string
}

// menuEntries is the checkbox order: enabled, display, remember, autostart.
var menuEntries = [4]menuEntry{
	{label: toggles.LabelEnabled},
	{label: toggles.LabelDisplay, hint: toggles.HintDisplay},
	{label: toggles.LabelRemember},
	{label: toggles.LabelAutostart},
}

// maxTooltip is the Windows notification-area tooltip limit, minus the NUL.
const maxTooltip = 127

// Refresher receives engine refresh ticks.
type Refresher interface {
	RefreshTick()
}

// Options configures the tray.
type Options struct {
	Toggles   *toggles.Toggles
	Refresher Refresher
	Ticker    *engine.ChannelTicker
	Status    *state.Store // optional
	Logger    *slog.Logger
}

func (o Options) validate() error {
	if o.Toggles == nil {
		return fmt.Errorf("tray requires toggles")
	}
	if o.Refresher == nil || o.Ticker == nil {
		return fmt.Errorf("tray requires an engine refresher and ticker")
	}
	return nil
}

// Tooltip renders the hover text for the tray icon.
func Tooltip(appName string, snap state.Snapshot) string {
	var text string
	switch {
	case !snap.Armed:
		text = fmt.Sprintf("%s: inactive", appName)
	case snap.IsDegraded():
		text = fmt.Sprintf("%s: active, but the last %d requests failed", appName, snap.ConsecutiveFailures)
	case snap.Mask.Has(execstate.DisplayRequired):
		text = fmt.Sprintf("%s: keeping the system and screen awake", appName)
	default:
		text = fmt.Sprintf("%s: keeping the system awake", appName)
	}

	runes := []rune(text)
	if len(runes) > maxTooltip {
		runes = runes[:maxTooltip]
	}
	return string(runes)
}
