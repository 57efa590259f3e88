// Package power talks to the operating system's idle-prevention primitive.
//
// Only Windows has a real implementation (SetThreadExecutionState). Other
// platforms get Noop so the arming logic still runs, logs and tests there.
package power

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/five82/nosleep/internal/engine"
	"github.com/five82/nosleep/internal/execstate"
	"github.com/five82/nosleep/internal/logging"
)

// ErrAssertionFailed is returned when the OS rejects an execution state.
var ErrAssertionFailed = errors.New("execution state assertion failed")

// ErrInvalidMask is returned for masks the OS would reject.
var ErrInvalidMask = errors.New("invalid execution state mask")

// New returns the platform asserter.
func New(logger *slog.Logger) engine.Asserter {
	if logger == nil {
		logger = logging.Discard()
	}
	return newAsserter(logger)
}

func validate(mask execstate.Mask) error {
	if mask == execstate.None || !mask.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidMask, mask)
	}
	return nil
}

// Noop remembers the last mask instead of calling the OS.
type Noop struct {
	logger *slog.Logger
	last   execstate.Mask
}

// NewNoop returns a Noop asserter.
func NewNoop(logger *slog.Logger) *Noop {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Noop{logger: logger}
}

// SetExecutionState records mask and returns the previous one.
func (n *Noop) SetExecutionState(mask execstate.Mask) (execstate.Mask, error) {
	if err := validate(mask); err != nil {
		return execstate.None, err
	}
	prev := n.last
	n.last = mask
	n.logger.Debug("execution state (no-op platform)", logging.Mask(mask))
	return prev, nil
}

// Last returns the most recently accepted mask.
func (n *Noop) Last() execstate.Mask {
	return n.last
}
