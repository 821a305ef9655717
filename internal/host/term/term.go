// Package term implements a host over a tcell terminal screen.
//
// Terminals report key presses but not releases, so a key counts as
// held for the frame in which its press arrived. Events are collected on
// a polling goroutine and latched into a stable snapshot by BeginFrame.
// Coordinates are terminal cells with the origin at the top-left.
package term

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/imbridge/internal/host"
)

// ErrClosed is returned when using a closed Host.
var ErrClosed = errors.New("terminal host closed")

// Host reads input from a tcell screen.
type Host struct {
	screen tcell.Screen

	mu sync.Mutex

	// collected since the last BeginFrame
	pendingKeys   map[host.KeyCode]bool
	pendingScroll host.Point

	// latched by BeginFrame
	keys   map[host.KeyCode]bool
	scroll host.Point

	buttons tcell.ButtonMask
	pos     host.Point
	queue   []host.TextEvent

	cursorVisible bool

	done     chan struct{}
	doneOnce sync.Once
	wg       sync.WaitGroup
	closed   bool
}

// New initializes screen for input and starts polling it. The screen is
// finalized by Close.
func New(screen tcell.Screen) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.EnablePaste()

	h := newHost(screen)
	h.wg.Add(1)
	go h.pollLoop()
	return h, nil
}

// NewTerminal creates a Host on the process's terminal.
func NewTerminal() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(screen)
}

func newHost(screen tcell.Screen) *Host {
	return &Host{
		screen:        screen,
		pendingKeys:   make(map[host.KeyCode]bool),
		keys:          make(map[host.KeyCode]bool),
		cursorVisible: true,
		done:          make(chan struct{}),
	}
}

// Screen returns the underlying screen for drawing.
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Done is closed when the user presses Ctrl+C or the screen goes away.
func (h *Host) Done() <-chan struct{} {
	return h.done
}

// Close finalizes the screen and waits for the polling goroutine.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	h.closed = true
	h.mu.Unlock()

	h.screen.Fini()
	h.wg.Wait()
	h.finish()
	return nil
}

func (h *Host) finish() {
	h.doneOnce.Do(func() { close(h.done) })
}

func (h *Host) pollLoop() {
	defer h.wg.Done()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			h.finish()
			return
		}
		h.handleEvent(ev)
	}
}

func (h *Host) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC {
			h.finish()
			return
		}
		h.handleKey(e)
	case *tcell.EventMouse:
		h.handleMouse(e)
	}
}

func (h *Host) handleKey(e *tcell.EventKey) {
	code, char, mods := convertKey(e.Key(), e.Rune())
	mods |= convertMod(e.Modifiers())

	h.mu.Lock()
	defer h.mu.Unlock()

	if code.Valid() {
		h.pendingKeys[code] = true
	}
	for _, m := range mods.keys() {
		h.pendingKeys[m] = true
	}
	// Ctrl and Alt chords are shortcuts, not text.
	if mods&(modCtrl|modAlt) == 0 || char == 0 {
		h.queue = append(h.queue, host.TextEvent{Type: host.EventKeyDown, Char: char, Key: code})
	}
}

func (h *Host) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	buttons := e.Buttons()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.pos = host.Point{X: float32(x), Y: float32(y)}
	h.buttons = buttons & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)

	if buttons&tcell.WheelUp != 0 {
		h.pendingScroll.Y++
	}
	if buttons&tcell.WheelDown != 0 {
		h.pendingScroll.Y--
	}
	if buttons&tcell.WheelLeft != 0 {
		h.pendingScroll.X--
	}
	if buttons&tcell.WheelRight != 0 {
		h.pendingScroll.X++
	}
}

// BeginFrame latches keys and scroll collected since the previous frame.
func (h *Host) BeginFrame() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.keys = h.pendingKeys
	h.pendingKeys = make(map[host.KeyCode]bool)
	h.scroll = h.pendingScroll
	h.pendingScroll = host.Point{}
}

func (h *Host) KeyDown(k host.KeyCode) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.keys[k]
}

func (h *Host) MouseButtonDown(b int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch b {
	case host.MouseLeft:
		return h.buttons&tcell.ButtonPrimary != 0
	case host.MouseRight:
		return h.buttons&tcell.ButtonSecondary != 0
	case host.MouseMiddle:
		return h.buttons&tcell.ButtonMiddle != 0
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
	return h.screen.Size()
}

// SetCursorShape maps the shape onto a terminal cursor style.
func (h *Host) SetCursorShape(shape host.CursorShape) {
	h.screen.SetCursorStyle(cursorStyle(shape))
}

// SetCursorVisible shows the terminal cursor at the mouse cell, or hides it.
func (h *Host) SetCursorVisible(visible bool) {
	h.mu.Lock()
	h.cursorVisible = visible
	pos := h.pos
	h.mu.Unlock()

	if visible {
		h.screen.ShowCursor(int(pos.X), int(pos.Y))
	} else {
		h.screen.HideCursor()
	}
}

func cursorStyle(shape host.CursorShape) tcell.CursorStyle {
	switch shape {
	case host.CursorText:
		return tcell.CursorStyleSteadyBar
	case host.CursorEWResize, host.CursorNSResize, host.CursorNESWResize,
		host.CursorNWSEResize, host.CursorMove:
		return tcell.CursorStyleSteadyUnderline
	case host.CursorNotAllowed:
		return tcell.CursorStyleBlinkingBlock
	case host.CursorDefault:
		return tcell.CursorStyleDefault
	default:
		return tcell.CursorStyleSteadyBlock
	}
}

var (
	_ host.Host   = (*Host)(nil)
	_ host.Framer = (*Host)(nil)
	_ host.Closer = (*Host)(nil)
)
