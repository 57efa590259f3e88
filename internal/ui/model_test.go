package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/nosleep/internal/engine"
	"github.com/five82/nosleep/internal/execstate"
	"github.com/five82/nosleep/internal/prefs"
	"github.com/five82/nosleep/internal/state"
	"github.com/five82/nosleep/internal/toggles"
)

type recordingAsserter struct {
	calls []execstate.Mask
}

func (r *recordingAsserter) SetExecutionState(m execstate.Mask) (execstate.Mask, error) {
	r.calls = append(r.calls, m)
	return execstate.None, nil
}

type fixture struct {
	model    Model
	asserter *recordingAsserter
	ticker   *Ticker
	engine   *engine.Engine
	store    *prefs.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.toml"))
	require.NoError(t, err)

	a := &recordingAsserter{}
	ticker := NewTicker()
	status := &state.Store{}
	e, err := engine.New(engine.Options{
		Mask:     toggles.InitialMask(store.Prefs()),
		Interval: store.Prefs().RefreshInterval(),
		Asserter: a,
		Ticker:   ticker,
		Recorder: status,
	})
	require.NoError(t, err)

	tg := toggles.New(toggles.Options{Engine: e, Prefs: store})
	tg.Start()

	m := New(Options{Toggles: tg, Refresher: e, Ticker: ticker, Status: status, Prefs: store})
	return &fixture{model: m, asserter: a, ticker: ticker, engine: e, store: store}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (f *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	m, ok := next.(Model)
	require.True(t, ok)
	f.model = m
	return cmd
}

func TestInit_SchedulesFirstTickWhenArmed(t *testing.T) {
	f := newFixture(t)

	assert.NotNil(t, f.model.Init())
	assert.Nil(t, f.model.Init(), "pending start is drained once")
	assert.True(t, f.ticker.Running())
}

func TestRefreshTick_AssertsAndReschedules(t *testing.T) {
	f := newFixture(t)
	f.asserter.calls = nil

	cmd := f.send(t, refreshMsg{gen: f.ticker.gen})

	assert.NotNil(t, cmd)
	assert.Equal(t, []execstate.Mask{execstate.FromPreferences(true)}, f.asserter.calls)
}

func TestRefreshTick_StaleAfterDisable(t *testing.T) {
	f := newFixture(t)
	stale := refreshMsg{gen: f.ticker.gen}

	f.send(t, runeKey("e"))
	require.False(t, f.engine.Armed())
	f.asserter.calls = nil

	cmd := f.send(t, stale)

	assert.Nil(t, cmd)
	assert.Empty(t, f.asserter.calls)
}

func TestRefreshTick_StaleAfterFlagChange(t *testing.T) {
	f := newFixture(t)
	stale := refreshMsg{gen: f.ticker.gen}

	cmd := f.send(t, runeKey("d"))
	assert.NotNil(t, cmd, "re-arm schedules a fresh tick")
	f.asserter.calls = nil

	assert.Nil(t, f.send(t, stale))
	assert.Empty(t, f.asserter.calls)
}

func TestRefreshTick_IntervalChangeWhileArmedKeepsTicking(t *testing.T) {
	f := newFixture(t)
	require.NotNil(t, f.model.Init())
	inFlight := refreshMsg{gen: f.ticker.gen}
	f.asserter.calls = nil

	require.NoError(t, f.engine.SetInterval(5*time.Second))
	cmd := f.send(t, inFlight)

	require.NotNil(t, cmd, "the restarted ticker must be scheduled")
	assert.False(t, f.ticker.pending)
	assert.Equal(t, 5*time.Second, f.ticker.interval)
	assert.Empty(t, f.asserter.calls, "the superseded tick is dropped")

	f.send(t, refreshMsg{gen: f.ticker.gen})
	assert.Equal(t, []execstate.Mask{execstate.FromPreferences(true)}, f.asserter.calls)
}

func TestKeys_ToggleMenu(t *testing.T) {
	f := newFixture(t)

	f.send(t, runeKey("d"))
	f.send(t, runeKey("r"))

	menu := f.model.toggles.State()
	assert.False(t, menu.DisplayRequired)
	assert.True(t, menu.RememberEnabledState)

	stored := f.store.Prefs()
	assert.False(t, stored.DisplayRequired)
	assert.True(t, stored.SaveEnabledState)
}

func TestKeys_CycleThemePersists(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, "Dracula", f.model.theme.Name)

	f.send(t, runeKey("T"))

	assert.Equal(t, "Slate", f.model.theme.Name)
	stored, err := prefs.Load(f.store.Path())
	require.NoError(t, err)
	assert.Equal(t, "Slate", stored.Theme)
}

func TestKeys_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		f := newFixture(t)
		require.NotNil(t, f.model.Init())
		cmd := f.send(t, msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestKeys_HelpToggles(t *testing.T) {
	f := newFixture(t)

	f.send(t, runeKey("?"))
	assert.True(t, f.model.help.ShowAll)
	assert.Contains(t, f.model.View(), "Autostart at login")

	f.send(t, runeKey("?"))
	assert.False(t, f.model.help.ShowAll)
}

func TestView_ShowsMenuAndStatus(t *testing.T) {
	f := newFixture(t)

	out := f.model.View()
	assert.Contains(t, out, "NoSleep")
	assert.Contains(t, out, "ARMED")
	for _, label := range []string{toggles.LabelEnabled, toggles.LabelDisplay, toggles.LabelRemember, toggles.LabelAutostart} {
		assert.Contains(t, out, label)
	}
	assert.Equal(t, 2, strings.Count(out, "[x]"), "enabled and keep screen on start checked")

	f.send(t, runeKey("e"))
	assert.Contains(t, f.model.View(), "DISARMED")
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, statusDisarmed, statusOf(state.Snapshot{}))
	assert.Equal(t, statusArmed, statusOf(state.Snapshot{Armed: true}))
	assert.Equal(t, statusDegraded, statusOf(state.Snapshot{Armed: true, ConsecutiveFailures: 2}))
}

func TestActivityPane_ShowsLogTail(t *testing.T) {
	f := newFixture(t)
	logPath := filepath.Join(t.TempDir(), "nosleep.log")
	body := "level=INFO msg=armed mask=System|Continuous\nlevel=WARN msg=\"assertion refused\" error=denied\n"
	require.NoError(t, os.WriteFile(logPath, []byte(body), 0o644))
	f.model.logPath = logPath

	f.send(t, runeKey("l"))

	require.True(t, f.model.showActivity)
	require.Len(t, f.model.activity, 2)
	out := f.model.View()
	assert.Contains(t, out, "Recent activity")
	assert.Contains(t, out, "assertion refused")
	assert.Contains(t, out, "error=denied")

	f.send(t, runeKey("l"))
	assert.NotContains(t, f.model.View(), "Recent activity")
}

func TestActivityPane_NoLogFile(t *testing.T) {
	f := newFixture(t)

	f.send(t, runeKey("l"))

	assert.Contains(t, f.model.View(), "no log file")
}

func TestView_MaskFollowsFlagWhileDisabled(t *testing.T) {
	f := newFixture(t)
	f.send(t, runeKey("e"))

	f.send(t, runeKey("d"))

	assert.Contains(t, f.model.View(), "mask "+execstate.Default.String()+" ")
}
