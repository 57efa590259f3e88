package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/nosleep/internal/logging"
	"github.com/five82/nosleep/internal/logtail"
	"github.com/five82/nosleep/internal/prefs"
	"github.com/five82/nosleep/internal/state"
	"github.com/five82/nosleep/internal/toggles"
)

const (
	statusArmed    = "armed"
	statusDisarmed = "disarmed"
	statusDegraded = "degraded"
)

const activityLines = 6

// Refresher receives engine refresh ticks.
type Refresher interface {
	RefreshTick()
}

// Options configures the terminal menu.
type Options struct {
	Toggles   *toggles.Toggles
	Refresher Refresher
	Ticker    *Ticker
	Status    *state.Store // optional
	Prefs     *prefs.Store // optional; theme changes persist here
	LogPath   string       // optional; source of the activity pane
	Logger    *slog.Logger
}

// Model is the root state of the terminal menu.
type Model struct {
	toggles   *toggles.Toggles
	refresher Refresher
	ticker    *Ticker
	status    *state.Store
	prefs     *prefs.Store
	logPath   string
	logger    *slog.Logger

	showActivity bool
	activity     []logtail.Entry

	keys  keyMap
	help  help.Model
	theme Theme
	width int
}

// New creates the menu model. The engine should already be started so the
// first tick is scheduled from Init.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	ticker := opts.Ticker
	if ticker == nil {
		ticker = NewTicker()
	}

	themeName := ""
	if opts.Prefs != nil {
		themeName = opts.Prefs.Prefs().Theme
	}

	return Model{
		toggles:   opts.Toggles,
		refresher: opts.Refresher,
		ticker:    ticker,
		status:    opts.Status,
		prefs:     opts.Prefs,
		logPath:   opts.LogPath,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.ticker.cmd()
}

// Update implements tea.Model. Any ticker start recorded while handling msg
// (arming, a flag change, an interval change) is turned into a tick here, so
// no handler can leave the engine armed without a scheduled refresh.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	tick := m.ticker.cmd()
	switch {
	case tick == nil:
		return next, cmd
	case cmd == nil:
		return next, tick
	default:
		return next, tea.Batch(cmd, tick)
	}
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		if !m.ticker.accept(msg) {
			return m, nil
		}
		if m.refresher != nil {
			m.refresher.RefreshTick()
		}
		m.loadActivity()
		return m, m.ticker.next()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		m.showActivity = !m.showActivity
		m.loadActivity()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.ToggleEnabled):
		m.toggles.ToggleEnabled()

	case key.Matches(msg, m.keys.ToggleDisplay):
		m.toggles.ToggleDisplayRequired()

	case key.Matches(msg, m.keys.ToggleRemember):
		m.toggles.ToggleRememberEnabledState()

	case key.Matches(msg, m.keys.ToggleAutostart):
		m.toggles.ToggleAutostart()

	default:
		return m, nil
	}

	m.loadActivity()
	return m, nil
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefs == nil {
		return
	}
	m.prefs.Update(func(p *prefs.Prefs) { p.Theme = m.theme.Name })
	if err := m.prefs.Save(); err != nil {
		m.logger.Warn("save theme failed", logging.Path(m.prefs.Path()), logging.Error(err))
	}
}

// loadActivity rereads the log tail while the activity pane is open.
func (m *Model) loadActivity() {
	if !m.showActivity || m.logPath == "" {
		return
	}
	entries, err := logtail.Recent(m.logPath, activityLines)
	if err != nil {
		m.logger.Debug("read activity failed", logging.Path(m.logPath), logging.Error(err))
		return
	}
	m.activity = entries
}

func (m Model) snapshot() state.Snapshot {
	if m.status == nil {
		return state.Snapshot{}
	}
	return m.status.Snapshot()
}

func statusOf(snap state.Snapshot) string {
	switch {
	case snap.Armed && snap.IsDegraded():
		return statusDegraded
	case snap.Armed:
		return statusArmed
	default:
		return statusDisarmed
	}
}
