package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// refreshMsg is one engine refresh tick. gen ties it to the Start that
// scheduled it; ticks from an earlier generation are dropped.
type refreshMsg struct {
	gen int
}

// Ticker implements engine.Ticker on top of tea.Tick. Start and Stop only
// record intent; the model turns pending starts into commands after every
// update, so ticks always arrive on the program's own goroutine.
type Ticker struct {
	gen      int
	interval time.Duration
	running  bool
	pending  bool
}

// NewTicker returns a stopped Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Start schedules ticks every interval, invalidating any in-flight tick.
func (t *Ticker) Start(interval time.Duration) {
	t.gen++
	t.interval = interval
	t.running = true
	t.pending = true
}

// Stop invalidates any in-flight tick.
func (t *Ticker) Stop() {
	t.gen++
	t.running = false
	t.pending = false
}

// Running reports whether ticks are being scheduled.
func (t *Ticker) Running() bool {
	return t.running
}

// cmd drains a pending Start into a tick command.
func (t *Ticker) cmd() tea.Cmd {
	if !t.pending {
		return nil
	}
	t.pending = false
	return t.next()
}

func (t *Ticker) next() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return refreshMsg{gen: gen}
	})
}

// accept reports whether msg belongs to the current generation.
func (t *Ticker) accept(msg refreshMsg) bool {
	return t.running && msg.gen == t.gen
}
