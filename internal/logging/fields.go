package logging

import (
	"log/slog"
	"time"

	"github.com/five82/nosleep/internal/execstate"
)

// Canonical log field names.
const (
	KeyMask     = "mask"
	KeyArmed    = "armed"
	KeyToggle   = "toggle"
	KeyValue    = "value"
	KeyInterval = "interval"
	KeyPath     = "path"
	KeyError    = "error"
)

// Mask logs an execution state mask by flag names.
func Mask(m execstate.Mask) slog.Attr { return slog.String(KeyMask, m.String()) }

// Armed logs whether the engine is armed.
func Armed(armed bool) slog.Attr { return slog.Bool(KeyArmed, armed) }

// Toggle names the menu toggle a log line is about.
func Toggle(name string) slog.Attr { return slog.String(KeyToggle, name) }

// Value logs a toggle's new value.
func Value(v bool) slog.Attr { return slog.Bool(KeyValue, v) }

// Interval logs a refresh interval.
func Interval(d time.Duration) slog.Attr { return slog.Duration(KeyInterval, d) }

// Path logs a file path.
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }

// Error logs err's message; nil logs an empty string.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
