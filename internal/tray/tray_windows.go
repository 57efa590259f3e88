//go:build windows

package tray

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/getlantern/systray"

	"github.com/five82/nosleep/internal/logging"
	"github.com/five82/nosleep/internal/state"
	"github.com/five82/nosleep/internal/toggles"
)

// Supported reports whether Run can show a tray icon on this platform.
const Supported = true

type menu struct {
	enabled   *systray.MenuItem
	display   *systray.MenuItem
	remember  *systray.MenuItem
	autostart *systray.MenuItem
	close     *systray.MenuItem
}

type trayApp struct {
	opts   Options
	logger *slog.Logger

	activeIcon   []byte
	inactiveIcon []byte

	menu     menu
	stop     chan struct{}
	loopDone chan struct{}
	started  atomic.Bool
}

// Run shows the tray icon and blocks until Close is clicked or ctx is
// cancelled. The caller's goroutine becomes the tray's UI thread.
func Run(ctx context.Context, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	t := &trayApp{
		opts:     opts,
		logger:   logger,
		stop:     make(chan struct{}),
		loopDone: make(chan struct{}),
	}
	t.loadIcons()

	stopQuit := context.AfterFunc(ctx, systray.Quit)
	defer stopQuit()

	systray.Run(t.onReady, t.onExit)

	close(t.stop)
	if t.started.Load() {
		<-t.loopDone
	}
	return nil
}

func (t *trayApp) loadIcons() {
	var err error
	if t.activeIcon, err = Icon(true); err != nil {
		t.logger.Warn("build tray icon failed", logging.Error(err))
	}
	if t.inactiveIcon, err = Icon(false); err != nil {
		t.logger.Warn("build tray icon failed", logging.Error(err))
	}
}

func (t *trayApp) onReady() {
	menuState := t.opts.Toggles.State()
	add := func(e menuEntry, checked bool) *systray.MenuItem {
		return systray.AddMenuItemCheckbox(e.label, e.hint, checked)
	}
	t.menu = menu{
		enabled:   add(menuEntries[0], menuState.Enabled),
		display:   add(menuEntries[1], menuState.DisplayRequired),
		remember:  add(menuEntries[2], menuState.RememberEnabledState),
		autostart: add(menuEntries[3], menuState.Autostart),
	}
	systray.AddSeparator()
	t.menu.close = systray.AddMenuItem(toggles.LabelClose, "")

	t.render()
	t.started.Store(true)
	go t.loop()
}

func (t *trayApp) onExit() {
	t.logger.Debug("tray exited")
}

// loop is the only goroutine that touches the engine while the tray runs.
func (t *trayApp) loop() {
	defer close(t.loopDone)
	for {
		select {
		case <-t.stop:
			return
		case <-t.menu.enabled.ClickedCh:
			t.opts.Toggles.ToggleEnabled()
		case <-t.menu.display.ClickedCh:
			t.opts.Toggles.ToggleDisplayRequired()
		case <-t.menu.remember.ClickedCh:
			t.opts.Toggles.ToggleRememberEnabledState()
		case <-t.menu.autostart.ClickedCh:
			t.opts.Toggles.ToggleAutostart()
		case <-t.menu.close.ClickedCh:
			systray.Quit()
			return
		case <-t.opts.Ticker.C():
			t.opts.Refresher.RefreshTick()
		}
		t.render()
	}
}

func (t *trayApp) render() {
	menuState := t.opts.Toggles.State()
	setChecked(t.menu.enabled, menuState.Enabled)
	setChecked(t.menu.display, menuState.DisplayRequired)
	setChecked(t.menu.remember, menuState.RememberEnabledState)
	setChecked(t.menu.autostart, menuState.Autostart)

	icon := t.inactiveIcon
	if menuState.Enabled {
		icon = t.activeIcon
	}
	if len(icon) > 0 {
		systray.SetIcon(icon)
	}

	var snap state.Snapshot
	if t.opts.Status != nil {
		snap = t.opts.Status.Snapshot()
	}
	systray.SetTooltip(Tooltip(t.opts.Toggles.AppName(), snap))
}

func setChecked(item *systray.MenuItem, checked bool) {
	if item.Checked() == checked {
		return
	}
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}
