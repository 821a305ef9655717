// Package sim provides an in-memory host whose input state is set
// directly. It drives platform tests and headless runs.
package sim

import "github.com/dshills/imbridge/internal/host"

// Host is a scriptable host. The zero value is not usable; use New.
// Host is not safe for concurrent use.
type Host struct {
	keys    map[host.KeyCode]bool
	buttons [8]bool
	pos     host.Point
	scroll  host.Point
	queue   []host.TextEvent
	origin  host.Origin
	width   int
	height  int

	shape   host.CursorShape
	visible bool

	// ShapeCalls and VisibleCalls record every cursor call in order.
	ShapeCalls   []host.CursorShape
	VisibleCalls []bool
}

// Option configures a Host.
type Option func(*Host)

// WithOrigin sets the host's screen-space origin.
func WithOrigin(o host.Origin) Option {
	return func(h *Host) {
		h.origin = o
	}
}

// WithDisplaySize sets the reported display size.
func WithDisplaySize(width, height int) Option {
	return func(h *Host) {
		h.width = width
		h.height = height
	}
}

// New creates a host with a bottom-left origin and an 800x600 display.
func New(opts ...Option) *Host {
	h := &Host{
		keys:    make(map[host.KeyCode]bool),
		origin:  host.OriginBottomLeft,
		width:   800,
		height:  600,
		visible: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Press marks keys as held.
func (h *Host) Press(keys ...host.KeyCode) {
	for _, k := range keys {
		h.keys[k] = true
	}
}

// Release marks keys as not held.
func (h *Host) Release(keys ...host.KeyCode) {
	for _, k := range keys {
		delete(h.keys, k)
	}
}

// ReleaseAll releases every key and mouse button.
func (h *Host) ReleaseAll() {
	h.keys = make(map[host.KeyCode]bool)
	h.buttons = [8]bool{}
}

// SetMouseButton sets the state of button b. Out of range is ignored.
func (h *Host) SetMouseButton(b int, down bool) {
	if b >= 0 && b < len(h.buttons) {
		h.buttons[b] = down
	}
}

// MoveMouse sets the raw mouse position.
func (h *Host) MoveMouse(x, y float32) {
	h.pos = host.Point{X: x, Y: y}
}

// Scroll sets the wheel delta reported for the current frame.
func (h *Host) Scroll(dx, dy float32) {
	h.scroll = host.Point{X: dx, Y: dy}
}

// Type queues a key-down text event per rune.
func (h *Host) Type(s string) {
	for _, r := range s {
		h.queue = append(h.queue, host.TextEvent{Type: host.EventKeyDown, Char: r})
	}
}

// Queue appends raw text events.
func (h *Host) Queue(events ...host.TextEvent) {
	h.queue = append(h.queue, events...)
}

// Pending returns the number of queued text events.
func (h *Host) Pending() int {
	return len(h.queue)
}

// SetDisplaySize changes the reported display size.
func (h *Host) SetDisplaySize(width, height int) {
	h.width = width
	h.height = height
}

// CursorShape returns the last shape set by the platform.
func (h *Host) CursorShape() host.CursorShape {
	return h.shape
}

// CursorVisible returns the last visibility set by the platform.
func (h *Host) CursorVisible() bool {
	return h.visible
}

// BeginFrame clears the per-frame scroll delta.
func (h *Host) BeginFrame() {
	h.scroll = host.Point{}
}

func (h *Host) KeyDown(k host.KeyCode) bool {
	return h.keys[k]
}

func (h *Host) MouseButtonDown(b int) bool {
	if b < 0 || b >= len(h.buttons) {
		return false
	}
	return h.buttons[b]
}

func (h *Host) MousePosition() host.Point {
	return h.pos
}

func (h *Host) ScrollDelta() host.Point {
	return h.scroll
}

func (h *Host) PopTextEvent(ev *host.TextEvent) bool {
	if len(h.queue) == 0 {
		return false
	}
	*ev = h.queue[0]
	h.queue = h.queue[1:]
	return true
}

func (h *Host) Origin() host.Origin {
	return h.origin
}

func (h *Host) SetCursorShape(shape host.CursorShape) {
	h.shape = shape
	h.ShapeCalls = append(h.ShapeCalls, shape)
}

func (h *Host) SetCursorVisible(visible bool) {
	h.visible = visible
	h.VisibleCalls = append(h.VisibleCalls, visible)
}

func (h *Host) DisplaySize() (int, int) {
	return h.width, h.height
}

var (
	_ host.Host   = (*Host)(nil)
	_ host.Framer = (*Host)(nil)
)
