package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/nosleep/internal/autostart"
	"github.com/five82/nosleep/internal/config"
	"github.com/five82/nosleep/internal/engine"
	"github.com/five82/nosleep/internal/instance"
	"github.com/five82/nosleep/internal/logging"
	"github.com/five82/nosleep/internal/notify"
	"github.com/five82/nosleep/internal/power"
	"github.com/five82/nosleep/internal/prefs"
	"github.com/five82/nosleep/internal/state"
	"github.com/five82/nosleep/internal/toggles"
)

// Options configure the NoSleep application. Everything except ConfigPath is
// optional; nil fields use the platform implementation.
type Options struct {
	ConfigPath string // empty uses $NOSLEEP_CONFIG or ~/.config/nosleep/config.toml

	Acquire   func(id string) (instance.Guard, bool, error)
	Asserter  engine.Asserter
	Notifier  notify.Notifier
	Registrar toggles.Registrar
	Surface   Surface
	Logger    *slog.Logger // replaces the configured log file
}

// Session is what a surface drives while it runs.
type Session struct {
	Toggles *toggles.Toggles
	Engine  *engine.Engine
	Status  *state.Store
	Prefs   *prefs.Store
	LogPath string // empty when logging goes elsewhere
	Logger  *slog.Logger
}

// Run keeps the system awake until the surface is closed or ctx is cancelled.
// A second instance shows one notice and returns nil without asserting.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.New()
	}

	// The guard comes first: a second instance must not touch the log file
	// or prefs that the running one owns.
	acquire := opts.Acquire
	if acquire == nil {
		acquire = instance.TryAcquire
	}
	guard, acquired, err := acquire(cfg.InstanceID)
	if err != nil {
		return fmt.Errorf("acquire instance guard: %w", err)
	}
	if !acquired {
		stored, _ := prefs.Load(cfg.PrefsPath)
		notifier.Info(stored.AppName, stored.AppName+" instance is already running.")
		return nil
	}

	logger, closer, err := openLogger(cfg, opts.Logger)
	if err != nil {
		_ = guard.Release()
		return err
	}
	defer func() { _ = closer.Close() }()
	defer func() {
		if err := guard.Release(); err != nil {
			logger.Warn("release instance guard failed", logging.Error(err))
		}
	}()

	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		if store == nil {
			return fmt.Errorf("open preferences: %w", err)
		}
		logger.Warn("upgrade preferences failed", logging.Path(store.Path()), logging.Error(err))
	}
	p := store.Prefs()

	asserter := opts.Asserter
	if asserter == nil {
		asserter = power.New(logger)
	}

	registrar := opts.Registrar
	if registrar == nil {
		r, err := autostart.NewDefault(p.AppName)
		if err != nil {
			logger.Warn("autostart unavailable", logging.Error(err))
		} else {
			registrar = r
		}
	}

	surface := opts.Surface
	if surface == nil {
		surface = newSurface(cfg.Surface, logger)
	}

	status := &state.Store{}
	eng, err := engine.New(engine.Options{
		Mask:     toggles.InitialMask(p),
		Interval: p.RefreshInterval(),
		Asserter: asserter,
		Ticker:   surface.Ticker(),
		Recorder: status,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("init engine: %w", err)
	}

	tg := toggles.New(toggles.Options{
		Engine:    eng,
		Prefs:     store,
		Registrar: registrar,
		Notifier:  notifier,
		Logger:    logger,
	})

	logger.Info("starting",
		slog.String("surface", surface.Name()),
		logging.Mask(eng.Mask()),
		logging.Interval(eng.Interval()),
		slog.Bool("enabled", tg.State().Enabled),
	)

	tg.Start()
	defer func() {
		tg.Shutdown()
		snap := status.Snapshot()
		logger.Info("stopped", logging.Armed(snap.Armed), slog.Int("assertions", snap.Assertions))
	}()

	session := Session{Toggles: tg, Engine: eng, Status: status, Prefs: store, Logger: logger}
	if opts.Logger == nil {
		session.LogPath = cfg.LogFile
	}
	if err := surface.Run(ctx, session); err != nil {
		return fmt.Errorf("run %s surface: %w", surface.Name(), err)
	}
	return nil
}

func openLogger(cfg config.Config, override *slog.Logger) (*slog.Logger, io.Closer, error) {
	if override != nil {
		return override, io.NopCloser(nil), nil
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	logger, closer, err := logging.Open(cfg.LogFile, level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}
	return logger, closer, nil
}
