package platform

import (
	"github.com/kataras/golog"

	"github.com/dshills/imbridge/internal/gui"
	"github.com/dshills/imbridge/internal/host"
)

// InputManager is the platform that polls a host's input state every
// frame. It is not safe for concurrent use.
type InputManager struct {
	base   *Base
	input  host.Input
	logger *golog.Logger

	keys      KeyMap
	emitKeyUp bool
	prevDown  [gui.KeyCount]bool

	textEvent host.TextEvent
}

// NewInputManager creates an InputManager reading from h.
func NewInputManager(h host.Host, opts ...Option) *InputManager {
	o := buildOptions(opts)
	return &InputManager{
		base:   newBase(h, o),
		input:  h,
		logger: o.logger.Child("[input-manager]"),
	}
}

// Initialize builds the key map and performs shared setup. It always
// succeeds.
func (m *InputManager) Initialize(io *gui.IO, cfg Config, platformName string) bool {
	m.base.Initialize(io, cfg, platformName)

	m.keys = DefaultKeyMap().With(cfg.ExtraKeys)
	m.emitKeyUp = cfg.EmitKeyUp
	m.prevDown = [gui.KeyCount]bool{}

	m.logger.Debugf("%d keys mapped, key-up events %v", m.keys.Len(), m.emitKeyUp)
	return true
}

// PrepareFrame writes this frame's host input into io.
func (m *InputManager) PrepareFrame(io *gui.IO, displayRect Rect) {
	m.base.PrepareFrame(io, displayRect)

	m.updateKeyboard(io)
	m.updateText(io)
	m.updateMouse(io)
	m.base.UpdateCursor(io, io.MouseCursor())
}

// Shutdown detaches from io.
func (m *InputManager) Shutdown(io *gui.IO) {
	m.base.Shutdown(io)
}

// KeyMap returns the key map built by Initialize.
func (m *InputManager) KeyMap() KeyMap {
	return m.keys
}

func (m *InputManager) updateKeyboard(io *gui.IO) {
	var down [gui.KeyCount]bool
	m.keys.Each(func(e KeyMapping) {
		if down[e.Logical] || !m.input.KeyDown(e.Physical) {
			return
		}
		down[e.Logical] = true
		io.AddKeyEvent(e.Logical, true)
	})

	if m.emitKeyUp {
		for k := gui.KeyNone + 1; k < gui.KeyCount; k++ {
			if m.prevDown[k] && !down[k] {
				io.AddKeyEvent(k, false)
			}
		}
	}
	m.prevDown = down

	io.KeyShift = m.anyDown(host.KeyLeftShift, host.KeyRightShift)
	io.KeyCtrl = m.anyDown(host.KeyLeftControl, host.KeyRightControl)
	io.KeyAlt = m.anyDown(host.KeyLeftAlt, host.KeyRightAlt)
	io.KeySuper = m.anyDown(host.KeyLeftCommand, host.KeyRightCommand,
		host.KeyLeftWindows, host.KeyRightWindows)
}

func (m *InputManager) anyDown(keys ...host.KeyCode) bool {
	for _, k := range keys {
		if m.input.KeyDown(k) {
			return true
		}
	}
	return false
}

func (m *InputManager) updateText(io *gui.IO) {
	for m.input.PopTextEvent(&m.textEvent) {
		ev := m.textEvent
		if ev.Type == host.EventKeyDown && ev.Char != 0 && ev.Char != '\n' {
			io.AddInputCharacter(ev.Char)
		}
	}
}

func (m *InputManager) updateMouse(io *gui.IO) {
	io.MousePos = ScreenToGUI(m.input.MousePosition(), io.DisplaySize.Y, m.input.Origin())

	scroll := m.input.ScrollDelta()
	io.MouseWheel = scroll.Y
	io.MouseWheelH = scroll.X

	io.MouseDown[gui.MouseButtonLeft] = m.input.MouseButtonDown(host.MouseLeft)
	io.MouseDown[gui.MouseButtonRight] = m.input.MouseButtonDown(host.MouseRight)
	io.MouseDown[gui.MouseButtonMiddle] = m.input.MouseButtonDown(host.MouseMiddle)
}

var _ Platform = (*InputManager)(nil)
