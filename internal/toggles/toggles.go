// Package toggles turns menu clicks into engine transitions and persisted
// preferences.
//
// Each handler flips one boolean, applies it, and persists it. Only "keep
// screen on" maps to a single mask flag; "enabled" is the master switch and
// arms or disarms the engine wholesale. "Remember enabled state" controls
// whether "enabled" survives a restart and writes the current value as soon as
// it is flipped.
//
// The checked state of "keep screen on" always equals the stored
// display_required value: checked means the display is currently required.
package toggles

import (
	"log/slog"

	"github.com/five82/nosleep/internal/engine"
	"github.com/five82/nosleep/internal/execstate"
	"github.com/five82/nosleep/internal/logging"
	"github.com/five82/nosleep/internal/notify"
	"github.com/five82/nosleep/internal/prefs"
)

// Menu labels shared by every surface.
const (
	LabelEnabled   = "Enabled"
	LabelDisplay   = "Keep screen on"
	LabelRemember  = "Remember enabled state"
	LabelAutostart = "Autostart at login"
	LabelClose     = "Close"
)

// HintDisplay explains "Keep screen on" where a surface can show item hints.
const HintDisplay = "If display should be kept always on in addition to keeping the system on."

// Registrar is the autostart collaborator.
type Registrar interface {
	IsRegistered() bool
	Register() error
	Unregister() error
}

// Engine is the part of engine.Engine the toggles drive.
type Engine interface {
	Arm()
	Disarm()
	SetFlag(flag execstate.Mask, enabled bool)
}

var _ Engine = (*engine.Engine)(nil)

// MenuState is what a surface renders as checkmarks.
type MenuState struct {
	Enabled              bool
	DisplayRequired      bool
	RememberEnabledState bool
	Autostart            bool
}

// Options configure Toggles.
type Options struct {
	Engine    Engine
	Prefs     *prefs.Store
	Registrar Registrar
	Notifier  notify.Notifier
	Logger    *slog.Logger
}

// Toggles holds the in-memory preference state.
type Toggles struct {
	engine    Engine
	prefs     *prefs.Store
	registrar Registrar
	notifier  notify.Notifier
	logger    *slog.Logger
	appName   string

	enabled         bool
	displayRequired bool
	remember        bool
	autostart       bool
}

// InitialState derives the startup toggles from stored preferences. Enabled
// is only read back when the user asked for it to be remembered.
func InitialState(p prefs.Prefs) MenuState {
	enabled := true
	if p.SaveEnabledState {
		enabled = p.EnabledState
	}
	return MenuState{
		Enabled:              enabled,
		DisplayRequired:      p.DisplayRequired,
		RememberEnabledState: p.SaveEnabledState,
	}
}

// InitialMask is the mask the engine should be constructed with.
func InitialMask(p prefs.Prefs) execstate.Mask {
	return execstate.FromPreferences(p.DisplayRequired)
}

// New builds Toggles from the loaded preferences. The engine must already
// carry InitialMask; New does not touch it.
func New(opts Options) *Toggles {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	p := opts.Prefs.Prefs()
	initial := InitialState(p)
	t := &Toggles{
		engine:          opts.Engine,
		prefs:           opts.Prefs,
		registrar:       opts.Registrar,
		notifier:        opts.Notifier,
		logger:          logger,
		appName:         p.AppName,
		enabled:         initial.Enabled,
		displayRequired: initial.DisplayRequired,
		remember:        initial.RememberEnabledState,
	}
	if t.registrar != nil {
		t.autostart = t.registrar.IsRegistered()
	}
	return t
}

// Start arms the engine when enabled.
func (t *Toggles) Start() {
	if t.enabled {
		t.engine.Arm()
	}
}

// Shutdown disarms the engine. Safe to call more than once.
func (t *Toggles) Shutdown() {
	t.engine.Disarm()
}

// State returns the checked state of every menu toggle.
func (t *Toggles) State() MenuState {
	return MenuState{
		Enabled:              t.enabled,
		DisplayRequired:      t.displayRequired,
		RememberEnabledState: t.remember,
		Autostart:            t.autostart,
	}
}

// AppName is the display name used for notices and the tray tooltip.
func (t *Toggles) AppName() string {
	return t.appName
}

// ToggleEnabled flips the master switch.
func (t *Toggles) ToggleEnabled() {
	t.enabled = !t.enabled
	if t.enabled {
		t.engine.Arm()
	} else {
		t.engine.Disarm()
	}
	t.logger.Info("toggle", logging.Toggle("enabled"), logging.Value(t.enabled))
	if t.remember {
		t.persist("enabled", func(p *prefs.Prefs) { p.EnabledState = t.enabled })
	}
}

// ToggleDisplayRequired flips "keep screen on".
func (t *Toggles) ToggleDisplayRequired() {
	t.displayRequired = !t.displayRequired
	t.engine.SetFlag(execstate.DisplayRequired, t.displayRequired)
	t.logger.Info("toggle", logging.Toggle("display_required"), logging.Value(t.displayRequired))
	t.persist("display_required", func(p *prefs.Prefs) { p.DisplayRequired = t.displayRequired })
}

// ToggleRememberEnabledState flips whether "enabled" survives restarts and
// stores the current enabled value right away.
func (t *Toggles) ToggleRememberEnabledState() {
	t.remember = !t.remember
	t.logger.Info("toggle", logging.Toggle("save_enabled_state"), logging.Value(t.remember))
	t.persist("save_enabled_state", func(p *prefs.Prefs) {
		p.SaveEnabledState = t.remember
		p.EnabledState = t.enabled
	})
}

// ToggleAutostart registers or removes the login launch entry. On failure the
// user is told why and the checked state stays as it was.
func (t *Toggles) ToggleAutostart() {
	if t.registrar == nil {
		return
	}
	var err error
	if t.autostart {
		err = t.registrar.Unregister()
	} else {
		err = t.registrar.Register()
	}
	if err != nil {
		t.logger.Warn("autostart change failed", logging.Toggle("autostart"), logging.Error(err))
		if t.notifier != nil {
			t.notifier.Error(t.appName, "Wasn't able to change autostart. Error: "+err.Error())
		}
		return
	}
	t.autostart = !t.autostart
	t.logger.Info("toggle", logging.Toggle("autostart"), logging.Value(t.autostart))
}

// persist saves best-effort; a failed write never rolls back the toggle.
func (t *Toggles) persist(name string, fn func(*prefs.Prefs)) {
	if t.prefs == nil {
		return
	}
	t.prefs.Update(fn)
	if err := t.prefs.Save(); err != nil {
		t.logger.Warn("save preferences failed", logging.Toggle(name), logging.Path(t.prefs.Path()), logging.Error(err))
	}
}
