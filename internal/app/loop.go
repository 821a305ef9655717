package app

import (
	"context"
	"time"

	"github.com/dshills/imbridge/internal/host"
	"github.com/dshills/imbridge/internal/platform"
)

// maxTyped bounds the recently typed text kept for Status.
const maxTyped = 40

// Run steps frames on a ticker until ctx is cancelled or the host
// reports that it is done.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	var hostDone <-chan struct{}
	if d, ok := app.host.(interface{ Done() <-chan struct{} }); ok {
		hostDone = d.Done()
	}

	interval := app.FrameInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	app.logger.Debugf("frame loop started interval=%v", interval)
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-hostDone:
			app.logger.Infof("host closed")
			return nil
		case now := <-ticker.C:
			// a late tick means the previous frames overran the interval
			if missed := int(now.Sub(last)/interval) - 1; missed > 0 {
				for i := 0; i < missed; i++ {
					app.metrics.RecordDroppedFrame()
				}
			}
			last = now

			app.Step()

			if next := app.FrameInterval(); next != interval {
				interval = next
				ticker.Reset(interval)
				app.logger.Debugf("frame interval now %v", interval)
			}
		}
	}
}

// Step latches host events and runs one frame.
func (app *Application) Step() {
	if f, ok := app.host.(host.Framer); ok {
		f.BeginFrame()
	}
	app.Frame()
}

// Frame runs one input update without latching host events. Hosts that
// latch inside their own loop (ebiten) call this directly.
func (app *Application) Frame() {
	start := time.Now()

	app.mu.Lock()
	if app.platform == nil {
		app.mu.Unlock()
		return
	}
	w, h := app.host.DisplaySize()
	app.platform.PrepareFrame(app.io, platform.RectFromSize(w, h))

	app.typed = append(app.typed, app.io.InputCharacters()...)
	if n := len(app.typed); n > maxTyped {
		app.typed = append(app.typed[:0], app.typed[n-maxTyped:]...)
	}

	if app.opts.OnFrame != nil {
		app.opts.OnFrame(app.io)
	}
	// per-frame queues are consumed; events queued between frames
	// (reload key releases) carry into the next one
	app.io.NewFrame()
	app.mu.Unlock()

	app.metrics.RecordFrame(time.Since(start))
}
