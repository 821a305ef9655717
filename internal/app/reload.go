package app

import (
	"context"

	"github.com/dshills/imbridge/internal/config/watcher"
)

func (app *Application) startWatcher() error {
	w, err := watcher.New(watcher.WithLogger(app.logger))
	if err != nil {
		return err
	}
	if err := w.Watch(app.opts.ConfigPath); err != nil {
		_ = w.Close()
		return err
	}
	w.OnChange(app.handleConfigChange)
	w.Start()
	app.watcher = w
	app.logger.Debugf("watching %s", app.opts.ConfigPath)
	return nil
}

func (app *Application) handleConfigChange(ev watcher.Event) {
	switch ev.Op {
	case watcher.OpRemove, watcher.OpRename:
		app.logger.Infof("config %s %s, keeping current settings", ev.Path, ev.Op)
		return
	}
	if err := app.Reload(context.Background()); err != nil {
		app.logger.Warnf("config reload failed, keeping current settings: %v", err)
	}
}

// Reload re-reads the configuration and replaces the platform with one
// built from the new settings. The host is kept; a host.kind change
// takes effect on restart. On error nothing changes.
func (app *Application) Reload(ctx context.Context) error {
	if err := app.config.Load(ctx); err != nil {
		return err
	}
	s := app.config.Settings()

	p, err := app.newPlatform(s)
	if err != nil {
		return err
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	if app.platform != nil {
		app.platform.Shutdown(app.io)
	}
	// The new adapter has no record of held keys, so release them here.
	// Keys still held are pressed again on the next frame.
	if s.Input.EmitKeyUp {
		for _, k := range app.io.KeysDown() {
			app.io.AddKeyEvent(k, false)
		}
	}

	if !p.Initialize(app.io, s.PlatformConfig(), s.Platform.Name) {
		app.platform = nil
		return ErrPlatformInit
	}
	app.platform = p

	app.logger.SetLevel(s.Logging.Level)
	app.interval.Store(int64(s.Frame.Interval()))
	if s.Host.Kind != app.hostKind {
		app.logger.Warnf("host.kind changed to %s, restart to apply", s.Host.Kind)
	}

	app.metrics.RecordReload()
	app.logger.Infof("config reloaded")
	return nil
}
