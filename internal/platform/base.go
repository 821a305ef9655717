package platform

import (
	"time"

	"github.com/kataras/golog"

	"github.com/dshills/imbridge/internal/gui"
	"github.com/dshills/imbridge/internal/host"
)

const (
	firstFrameDelta = 1.0 / 60.0
	minFrameDelta   = 1e-5
)

// Base is the logic every platform shares: frame timing, clipboard
// hooks and host cursor synchronization.
type Base struct {
	cursor    host.Cursor
	cursors   CursorTable
	clipboard Clipboard
	logger    *golog.Logger
	now       func() time.Time

	lastFrame time.Time

	shape         host.CursorShape
	shapeSynced   bool
	visible       bool
	visibleSynced bool
}

// NewBase creates a Base that drives cursor.
func NewBase(cursor host.Cursor, opts ...Option) *Base {
	o := buildOptions(opts)
	return newBase(cursor, o)
}

func newBase(cursor host.Cursor, o options) *Base {
	return &Base{
		cursor:    cursor,
		cursors:   DefaultCursorTable(),
		clipboard: o.clipboard,
		logger:    o.logger.Child("[platform]"),
		now:       o.now,
	}
}

// Initialize registers the backend on io and installs clipboard hooks.
func (b *Base) Initialize(io *gui.IO, cfg Config, platformName string) {
	io.BackendPlatformName = platformName
	io.BackendFlags |= gui.BackendHasMouseCursors
	if cfg.NoMouseCursorChange {
		io.ConfigFlags |= gui.ConfigNoMouseCursorChange
	}

	b.cursors = DefaultCursorTable().Merge(cfg.CursorShapes)
	b.lastFrame = time.Time{}
	b.shapeSynced = false
	b.visibleSynced = false

	io.GetClipboardText = func() string {
		text, err := b.clipboard.ReadText()
		if err != nil {
			b.logger.Debugf("clipboard read: %v", err)
			return ""
		}
		return text
	}
	io.SetClipboardText = func(text string) {
		if err := b.clipboard.WriteText(text); err != nil {
			b.logger.Debugf("clipboard write: %v", err)
		}
	}

	b.logger.Debugf("initialized %q", platformName)
}

// Shutdown removes the hooks installed by Initialize.
func (b *Base) Shutdown(io *gui.IO) {
	io.GetClipboardText = nil
	io.SetClipboardText = nil
	io.BackendPlatformName = ""
	io.BackendFlags &^= gui.BackendHasMouseCursors
}

// PrepareFrame sets the display size and the time since the last frame.
func (b *Base) PrepareFrame(io *gui.IO, displayRect Rect) {
	io.DisplaySize = gui.Vec2{X: displayRect.Width, Y: displayRect.Height}

	now := b.now()
	if b.lastFrame.IsZero() {
		io.DeltaTime = firstFrameDelta
	} else {
		dt := float32(now.Sub(b.lastFrame).Seconds())
		if dt < minFrameDelta {
			dt = minFrameDelta
		}
		io.DeltaTime = dt
	}
	b.lastFrame = now
}

// UpdateCursor makes the host cursor match the GUI's request. The host
// is only called when shape or visibility actually changes.
func (b *Base) UpdateCursor(io *gui.IO, cursor gui.MouseCursor) {
	if io.ConfigFlags&gui.ConfigNoMouseCursorChange != 0 {
		return
	}

	if cursor == gui.MouseCursorNone || io.MouseDrawCursor {
		b.setVisible(false)
		return
	}

	b.setVisible(true)
	shape := b.cursors.Shape(cursor)
	if b.shapeSynced && b.shape == shape {
		return
	}
	b.cursor.SetCursorShape(shape)
	b.shape = shape
	b.shapeSynced = true
	b.logger.Debugf("cursor %s -> %s", cursor, shape)
}

func (b *Base) setVisible(visible bool) {
	if b.visibleSynced && b.visible == visible {
		return
	}
	b.cursor.SetCursorVisible(visible)
	b.visible = visible
	b.visibleSynced = true
}
