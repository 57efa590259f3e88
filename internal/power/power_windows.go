//go:build windows

package power

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sys/windows"

	"github.com/five82/nosleep/internal/execstate"
)

var (
	kernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = kernel32.NewProc("SetThreadExecutionState")
)

type result struct {
	prev execstate.Mask
	err  error
}

type request struct {
	mask  execstate.Mask
	reply chan result
}

// windowsAsserter funnels every call through one locked OS thread. The
// execution state belongs to the calling thread, so a continuous assertion
// can only be released from the thread that made it.
type windowsAsserter struct {
	logger *slog.Logger
	once   sync.Once
	reqs   chan request
}

func newAsserter(logger *slog.Logger) *windowsAsserter {
	return &windowsAsserter{logger: logger, reqs: make(chan request)}
}

func (w *windowsAsserter) start() {
	go func() {
		// Never unlocked: the thread must outlive every assertion it holds.
		runtime.LockOSThread()
		for req := range w.reqs {
			prev, err := setThreadExecutionState(req.mask)
			req.reply <- result{prev: prev, err: err}
		}
	}()
}

// SetExecutionState calls SetThreadExecutionState. A zero return means failure.
func (w *windowsAsserter) SetExecutionState(mask execstate.Mask) (execstate.Mask, error) {
	if err := validate(mask); err != nil {
		return execstate.None, err
	}
	w.once.Do(w.start)

	reply := make(chan result, 1)
	w.reqs <- request{mask: mask, reply: reply}
	res := <-reply
	if res.err != nil {
		w.logger.Debug("SetThreadExecutionState failed", slog.String("error", res.err.Error()))
	}
	return res.prev, res.err
}

func setThreadExecutionState(mask execstate.Mask) (execstate.Mask, error) {
	if err := procSetThreadExecutionState.Find(); err != nil {
		return execstate.None, fmt.Errorf("%w: %v", ErrAssertionFailed, err)
	}
	prev, _, callErr := procSetThreadExecutionState.Call(uintptr(mask))
	if prev == 0 {
		return execstate.None, fmt.Errorf("%w: %v", ErrAssertionFailed, callErr)
	}
	return execstate.Mask(prev), nil
}
