package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/five82/nosleep/internal/execstate"
	"github.com/five82/nosleep/internal/logging"
)

// DefaultInterval is comfortably below any realistic idle or screensaver timeout.
const DefaultInterval = 10 * time.Second

// ErrInvalidInterval is returned for non-positive refresh intervals.
var ErrInvalidInterval = errors.New("refresh interval must be positive")

// Asserter is the OS idle-prevention primitive. It returns the previously
// asserted mask.
type Asserter interface {
	SetExecutionState(mask execstate.Mask) (execstate.Mask, error)
}

// Ticker schedules refresh ticks. The owner of the Engine delivers each tick
// back by calling RefreshTick on its own goroutine.
type Ticker interface {
	Start(interval time.Duration)
	Stop()
}

// Recorder observes assertions and arming transitions.
type Recorder interface {
	RecordAssertion(mask execstate.Mask, err error)
	RecordArmed(armed bool, mask execstate.Mask)
}

// Options configure an Engine.
type Options struct {
	Mask     execstate.Mask
	Interval time.Duration // zero uses DefaultInterval
	Asserter Asserter
	Ticker   Ticker
	Recorder Recorder     // optional
	Logger   *slog.Logger // optional
}

// Engine composes the current mask, asserts it and keeps it refreshed.
type Engine struct {
	mask     execstate.Mask
	armed    bool
	interval time.Duration

	asserter Asserter
	ticker   Ticker
	recorder Recorder
	logger   *slog.Logger
}

// New returns a disarmed Engine.
func New(opts Options) (*Engine, error) {
	if opts.Asserter == nil {
		return nil, errors.New("engine requires an asserter")
	}
	if opts.Ticker == nil {
		return nil, errors.New("engine requires a ticker")
	}
	interval := opts.Interval
	if interval == 0 {
		interval = DefaultInterval
	}
	if interval < 0 {
		return nil, ErrInvalidInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{
		mask:     opts.Mask,
		interval: interval,
		asserter: opts.Asserter,
		ticker:   opts.Ticker,
		recorder: opts.Recorder,
		logger:   logger,
	}, nil
}

// Mask returns the mask that is (or will be) asserted.
func (e *Engine) Mask() execstate.Mask { return e.mask }

// Armed reports whether the refresh loop is running.
func (e *Engine) Armed() bool { return e.armed }

// Interval returns the refresh interval.
func (e *Engine) Interval() time.Duration { return e.interval }

// Arm asserts the current mask immediately and (re)starts the refresh ticker.
func (e *Engine) Arm() {
	e.assert(e.mask)
	e.ticker.Start(e.interval)
	if !e.armed {
		e.armed = true
		e.logger.Info("armed", logging.Mask(e.mask), logging.Interval(e.interval))
		e.recordArmed()
	}
}

// Disarm stops the refresh ticker and releases a continuous assertion.
// Calling it while disarmed does nothing.
func (e *Engine) Disarm() {
	if !e.armed {
		return
	}
	e.ticker.Stop()
	e.armed = false
	if e.mask.Has(execstate.Continuous) {
		e.assert(execstate.ReleaseMask)
	}
	e.logger.Info("disarmed", logging.Mask(e.mask))
	e.recordArmed()
}

// SetFlag enables or disables flag in the mask. While armed the old mask is
// released before the new one is asserted.
func (e *Engine) SetFlag(flag execstate.Mask, enabled bool) {
	next := execstate.DisableFlag(e.mask, flag)
	if enabled {
		next = execstate.EnableFlag(e.mask, flag)
	}
	if next == e.mask {
		return
	}
	if !e.armed {
		e.mask = next
		e.logger.Debug("mask updated", logging.Mask(next), logging.Armed(false))
		e.recordArmed()
		return
	}
	e.Disarm()
	e.mask = next
	e.Arm()
}

// SetInterval changes the refresh interval, restarting the ticker when armed.
func (e *Engine) SetInterval(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidInterval
	}
	e.interval = d
	if e.armed {
		e.ticker.Start(d)
	}
	return nil
}

// RefreshTick re-asserts the current mask. Ticks that arrive after Disarm are
// dropped.
func (e *Engine) RefreshTick() {
	if !e.armed {
		return
	}
	e.assert(e.mask)
}

func (e *Engine) assert(mask execstate.Mask) {
	_, err := e.asserter.SetExecutionState(mask)
	if err != nil {
		e.logger.Warn("execution state assertion failed", logging.Mask(mask), logging.Error(err))
	} else {
		e.logger.Debug("execution state asserted", logging.Mask(mask))
	}
	if e.recorder != nil {
		e.recorder.RecordAssertion(mask, err)
	}
}

func (e *Engine) recordArmed() {
	if e.recorder != nil {
		e.recorder.RecordArmed(e.armed, e.mask)
	}
}
