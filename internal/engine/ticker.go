package engine

import "time"

// ChannelTicker is a Ticker for select-based event loops. C returns nil
// while stopped, so a select case on it simply never fires.
type ChannelTicker struct {
	ticker *time.Ticker
	c      <-chan time.Time
}

// Start starts the ticker or resets it to a new interval.
func (t *ChannelTicker) Start(interval time.Duration) {
	if t.ticker == nil {
		t.ticker = time.NewTicker(interval)
	} else {
		t.ticker.Reset(interval)
	}
	t.c = t.ticker.C
}

// Stop halts ticks until the next Start.
func (t *ChannelTicker) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
	}
	t.c = nil
}

// C returns the tick channel, or nil while stopped.
func (t *ChannelTicker) C() <-chan time.Time {
	return t.c
}
