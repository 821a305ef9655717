//go:build linux

// Package evdevhost implements a host over Linux input devices.
//
// Each device is read on its own goroutine. Key and button state comes
// straight from EV_KEY press and release events. Relative motion is
// accumulated into an absolute position clamped to the display size, and
// wheel motion accumulates until the next BeginFrame. Key presses are
// translated to text with a US layout. The system cursor is not under
// this host's control, so cursor calls only record state.
package evdevhost

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/kataras/golog"

	"github.com/dshills/imbridge/internal/host"
)

// ErrNoDevices is returned by Open when no device could be opened.
var ErrNoDevices = errors.New("no input devices")

// DefaultGlob matches the kernel's event device nodes.
const DefaultGlob = "/dev/input/event*"

// Host reads one or more evdev devices.
type Host struct {
	mu sync.Mutex

	devices []*evdev.InputDevice
	logger  *golog.Logger

	keys     map[uint16]bool
	capsLock bool

	width, height int
	pos           host.Point
	pendingScroll host.Point
	scroll        host.Point
	queue         []host.TextEvent

	cursorShape   host.CursorShape
	cursorVisible bool

	wg     sync.WaitGroup
	closed bool
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger.
func WithLogger(l *golog.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l.Child("[evdev]")
		}
	}
}

// WithDisplaySize sets the area mouse motion is clamped to.
func WithDisplaySize(width, height int) Option {
	return func(h *Host) {
		h.width = width
		h.height = height
	}
}

func newHost(opts ...Option) *Host {
	h := &Host{
		logger:        golog.Default.Child("[evdev]"),
		keys:          make(map[uint16]bool),
		width:         1920,
		height:        1080,
		cursorVisible: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.pos = host.Point{X: float32(h.width) / 2, Y: float32(h.height) / 2}
	return h
}

// Open opens the device nodes at paths (DefaultGlob when empty) and
// starts reading them. Nodes that fail to open are skipped.
func Open(paths []string, opts ...Option) (*Host, error) {
	h := newHost(opts...)

	if len(paths) == 0 {
		matches, err := filepath.Glob(DefaultGlob)
		if err != nil {
			return nil, fmt.Errorf("listing input devices: %w", err)
		}
		paths = matches
	}

	for _, path := range paths {
		dev, err := evdev.Open(path)
		if err != nil {
			h.logger.Debugf("skipping %s: %v", path, err)
			continue
		}
		h.logger.Infof("reading %s (%s)", path, dev.Name)
		h.devices = append(h.devices, dev)
	}
	if len(h.devices) == 0 {
		return nil, ErrNoDevices
	}

	for _, dev := range h.devices {
		h.wg.Add(1)
		go h.readLoop(dev)
	}
	return h, nil
}

// Close closes every device and waits for the readers to exit.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	devices := h.devices
	h.mu.Unlock()

	var errs []error
	for _, dev := range devices {
		if err := dev.File.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	h.wg.Wait()
	return errors.Join(errs...)
}

func (h *Host) readLoop(dev *evdev.InputDevice) {
	defer h.wg.Done()
	for {
		events, err := dev.Read()
		if err != nil {
			h.mu.Lock()
			closed := h.closed
			h.mu.Unlock()
			if !closed {
				h.logger.Warnf("read %s: %v", dev.Fn, err)
			}
			return
		}
		for _, ev := range events {
			h.handle(ev.Type, ev.Code, ev.Value)
		}
	}
}

func (h *Host) handle(typ, code uint16, value int32) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch typ {
	case evKey:
		h.handleKey(code, value)
	case evRel:
		h.handleRel(code, value)
	}
}

func (h *Host) handleKey(code uint16, value int32) {
	switch value {
	case valueRelease:
		delete(h.keys, code)
		return
	case valuePress:
		h.keys[code] = true
		if code == keyCapsLock {
			h.capsLock = !h.capsLock
		}
	case valueRepeat:
	default:
		return
	}

	if code >= btnLeft && code <= btnMiddle {
		return
	}
	shift := h.keys[keyLeftShift] || h.keys[keyRightShift]
	ch := translate(code, shift, h.capsLock)
	if h.keys[keyLeftCtrl] || h.keys[keyRightCtrl] || h.keys[keyLeftAlt] || h.keys[keyRightAlt] {
		ch = 0
	}
	h.queue = append(h.queue, host.TextEvent{Type: host.EventKeyDown, Char: ch, Key: linuxKeys[code]})
}

func (h *Host) handleRel(code uint16, value int32) {
	switch code {
	case relX:
		h.pos.X = limit(h.pos.X+float32(value), float32(h.width-1))
	case relY:
		h.pos.Y = limit(h.pos.Y+float32(value), float32(h.height-1))
	case relWheel:
		h.pendingScroll.Y += float32(value)
	case relHWheel:
		h.pendingScroll.X += float32(value)
	}
}

func limit(v, hi float32) float32 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// BeginFrame latches wheel motion collected since the previous frame.
func (h *Host) BeginFrame() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scroll = h.pendingScroll
	h.pendingScroll = host.Point{}
}

func (h *Host) KeyDown(k host.KeyCode) bool {
	if !k.Valid() {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for code, down := range h.keys {
		if down && linuxKeys[code] == k {
			return true
		}
	}
	return false
}

func (h *Host) MouseButtonDown(b int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	switch b {
	case host.MouseLeft:
		return h.keys[btnLeft]
	case host.MouseRight:
		return h.keys[btnRight]
	case host.MouseMiddle:
		return h.keys[btnMiddle]
	default:
		return false
	}
}

func (h *Host) MousePosition() host.Point {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pos
}

func (h *Host) ScrollDelta() host.Point {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.scroll
}

func (h *Host) PopTextEvent(ev *host.TextEvent) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.queue) == 0 {
		return false
	}
	*ev = h.queue[0]
	h.queue = h.queue[1:]
	return true
}

func (h *Host) Origin() host.Origin {
	return host.OriginTopLeft
}

func (h *Host) DisplaySize() (int, int) {
	return h.width, h.height
}

func (h *Host) SetCursorShape(shape host.CursorShape) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursorShape = shape
}

func (h *Host) SetCursorVisible(visible bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursorVisible = visible
}

var (
	_ host.Host   = (*Host)(nil)
	_ host.Framer = (*Host)(nil)
	_ host.Closer = (*Host)(nil)
)
