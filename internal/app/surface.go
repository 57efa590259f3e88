package app

import (
	"context"
	"log/slog"

	"github.com/five82/nosleep/internal/config"
	"github.com/five82/nosleep/internal/engine"
	"github.com/five82/nosleep/internal/tray"
	"github.com/five82/nosleep/internal/ui"
)

// Surface is a control surface. It supplies the engine's ticker, and while
// Run blocks its event loop is the only goroutine touching the engine.
type Surface interface {
	Name() string
	Ticker() engine.Ticker
	Run(ctx context.Context, s Session) error
}

// newSurface picks the configured surface, falling back to the terminal menu
// where no tray exists.
func newSurface(kind config.Surface, logger *slog.Logger) Surface {
	if kind == config.SurfaceTray {
		if tray.Supported {
			return &traySurface{ticker: &engine.ChannelTicker{}}
		}
		logger.Info("tray unavailable, using terminal menu")
	}
	return &terminalSurface{ticker: ui.NewTicker()}
}

type traySurface struct {
	ticker *engine.ChannelTicker
}

func (s *traySurface) Name() string          { return string(config.SurfaceTray) }
func (s *traySurface) Ticker() engine.Ticker { return s.ticker }

func (s *traySurface) Run(ctx context.Context, sess Session) error {
	return tray.Run(ctx, tray.Options{
		Toggles:   sess.Toggles,
		Refresher: sess.Engine,
		Ticker:    s.ticker,
		Status:    sess.Status,
		Logger:    sess.Logger,
	})
}

type terminalSurface struct {
	ticker *ui.Ticker
}

func (s *terminalSurface) Name() string          { return string(config.SurfaceTerminal) }
func (s *terminalSurface) Ticker() engine.Ticker { return s.ticker }

func (s *terminalSurface) Run(ctx context.Context, sess Session) error {
	return ui.Run(ctx, ui.Options{
		Toggles:   sess.Toggles,
		Refresher: sess.Engine,
		Ticker:    s.ticker,
		Status:    sess.Status,
		Prefs:     sess.Prefs,
		LogPath:   sess.LogPath,
		Logger:    sess.Logger,
	})
}
