// Package app wires a host, the platform adapter and the GUI I/O object
// into a frame loop. It owns configuration loading and live reload.
package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/kataras/golog"

	"github.com/dshills/imbridge/internal/config"
	"github.com/dshills/imbridge/internal/config/watcher"
	"github.com/dshills/imbridge/internal/gui"
	"github.com/dshills/imbridge/internal/host"
	"github.com/dshills/imbridge/internal/host/sim"
	"github.com/dshills/imbridge/internal/logging"
	"github.com/dshills/imbridge/internal/platform"
)

// HostOpener opens the host named by the settings.
type HostOpener func(s config.Settings, logger *golog.Logger) (host.Host, error)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty runs on defaults and
	// environment only.
	ConfigPath string

	// Overrides are applied with config.Set after loading, typically
	// from command line flags.
	Overrides map[string]any

	// Watch reloads the configuration when ConfigPath changes.
	Watch bool

	// Logger replaces the logger built from the logging settings.
	Logger *golog.Logger

	// OpenHost opens the host. The default only knows the sim host.
	OpenHost HostOpener

	// Clipboard replaces the clipboard chosen by clipboard.system.
	Clipboard platform.Clipboard

	// Clock is the time source for frame deltas.
	Clock func() time.Time

	// OnFrame is called after every frame with the updated IO.
	OnFrame func(io *gui.IO)
}

// Application runs the per-frame input update.
type Application struct {
	// mu guards the platform, io and typed buffer against reloads
	mu sync.Mutex

	config    *config.Config
	logger    *golog.Logger
	logCloser io.Closer
	sessionID string

	host     host.Host
	platform platform.Platform
	io       *gui.IO
	hostKind string
	interval atomic.Int64

	watcher *watcher.Watcher
	metrics *Metrics
	typed   []rune

	running atomic.Bool
	opts    Options
}

// New loads configuration and opens the host and platform.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:      opts,
		io:        gui.NewIO(),
		metrics:   NewMetrics(),
		sessionID: uuid.NewString(),
	}
	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (app *Application) bootstrap() error {
	app.config = config.New(config.WithPath(app.opts.ConfigPath))
	if err := app.config.Load(context.Background()); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	for path, value := range app.opts.Overrides {
		if err := app.config.Set(path, value); err != nil {
			return &InitError{Component: "config", Err: err}
		}
	}
	settings := app.config.Settings()

	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
	} else {
		logger, closer, err := logging.New(logging.Options{
			Level:   settings.Logging.Level,
			File:    settings.Logging.File,
			Console: settings.Host.Kind != "term",
		})
		if err != nil {
			return &InitError{Component: "logging", Err: err}
		}
		app.logger, app.logCloser = logger, closer
	}
	app.logger.Infof("session %s starting host=%s fps=%d", app.sessionID, settings.Host.Kind, settings.Frame.FPS)

	openHost := app.opts.OpenHost
	if openHost == nil {
		openHost = OpenSimHost
	}
	h, err := openHost(settings, app.logger)
	if err != nil {
		return &InitError{Component: "host", Err: err}
	}
	app.host = h
	app.hostKind = settings.Host.Kind

	p, err := app.newPlatform(settings)
	if err != nil {
		return &InitError{Component: "platform", Err: err}
	}
	if !p.Initialize(app.io, settings.PlatformConfig(), settings.Platform.Name) {
		return &InitError{Component: "platform", Err: ErrPlatformInit}
	}
	app.platform = p
	app.interval.Store(int64(settings.Frame.Interval()))

	if app.opts.Watch && app.opts.ConfigPath != "" {
		if err := app.startWatcher(); err != nil {
			// live reload is optional
			app.logger.Warnf("config watcher disabled: %v", err)
		}
	}
	return nil
}

// OpenSimHost opens an in-memory host sized from the display settings.
func OpenSimHost(s config.Settings, _ *golog.Logger) (host.Host, error) {
	if s.Host.Kind != "sim" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHost, s.Host.Kind)
	}
	return sim.New(sim.WithDisplaySize(s.Display.Width, s.Display.Height)), nil
}

// newPlatform creates a platform for s over the current host. The caller
// initializes it.
func (app *Application) newPlatform(s config.Settings) (platform.Platform, error) {
	clip := app.opts.Clipboard
	if clip == nil {
		if s.Clipboard.System {
			clip = platform.NewSystemClipboard()
		} else {
			clip = platform.NewMemoryClipboard()
		}
	}

	p, err := platform.New(platform.KindInputManager, app.host,
		platform.WithLogger(app.logger),
		platform.WithClipboard(clip),
		platform.WithClock(app.opts.Clock),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Close shuts down the platform, host and watcher.
func (app *Application) Close() error {
	if app.watcher != nil {
		_ = app.watcher.Close()
	}

	app.mu.Lock()
	if app.platform != nil {
		app.platform.Shutdown(app.io)
		app.platform = nil
	}
	app.mu.Unlock()

	var err error
	if c, ok := app.host.(host.Closer); ok {
		err = c.Close()
	}
	if app.logger != nil {
		app.logger.Infof("session %s stopped", app.sessionID)
	}
	if app.logCloser != nil {
		_ = app.logCloser.Close()
	}
	return err
}

// Config returns the application configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *golog.Logger {
	return app.logger
}

// Host returns the open host.
func (app *Application) Host() host.Host {
	return app.host
}

// SessionID identifies this run in logs.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Metrics returns the frame metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// FrameInterval returns the current time between frames.
func (app *Application) FrameInterval() time.Duration {
	return time.Duration(app.interval.Load())
}

// WithIO calls fn with the GUI I/O object while no frame or reload runs.
func (app *Application) WithIO(fn func(io *gui.IO)) {
	app.mu.Lock()
	defer app.mu.Unlock()
	fn(app.io)
}
