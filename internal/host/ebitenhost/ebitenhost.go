// Package ebitenhost implements a host over Ebitengine's input API.
//
// Ebitengine answers key, button, cursor and wheel queries directly, so
// the host is a thin translation layer. Typed characters arrive through
// AppendInputChars and must be collected once per tick with BeginFrame,
// which has to run inside the game's Update.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dshills/imbridge/internal/host"
)

// Host reads input from the running Ebitengine game.
type Host struct {
	width, height int

	chars []rune
	queue []host.TextEvent
}

// New creates a host reporting the given layout size.
func New(width, height int) *Host {
	return &Host{width: width, height: height}
}

// SetDisplaySize records the game's layout size.
func (h *Host) SetDisplaySize(width, height int) {
	h.width = width
	h.height = height
}

// BeginFrame queues characters typed and Enter presses since the last tick.
func (h *Host) BeginFrame() {
	h.chars = ebiten.AppendInputChars(h.chars[:0])
	for _, r := range h.chars {
		h.queue = append(h.queue, host.TextEvent{Type: host.EventKeyDown, Char: r})
	}
	for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter} {
		if inpututil.IsKeyJustPressed(k) {
			h.queue = append(h.queue, host.TextEvent{Type: host.EventKeyDown, Char: '\n', Key: host.KeyReturn})
		}
	}
}

func (h *Host) KeyDown(k host.KeyCode) bool {
	ek, ok := keyTable[k]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(ek)
}

func (h *Host) MouseButtonDown(b int) bool {
	switch b {
	case host.MouseLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case host.MouseRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case host.MouseMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	default:
		return false
	}
}

func (h *Host) MousePosition() host.Point {
	x, y := ebiten.CursorPosition()
	return host.Point{X: float32(x), Y: float32(y)}
}

func (h *Host) ScrollDelta() host.Point {
	x, y := ebiten.Wheel()
	return host.Point{X: float32(x), Y: float32(y)}
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
	return host.OriginTopLeft
}

func (h *Host) DisplaySize() (int, int) {
	return h.width, h.height
}

func (h *Host) SetCursorShape(shape host.CursorShape) {
	ebiten.SetCursorShape(cursorShape(shape))
}

func (h *Host) SetCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

var (
	_ host.Host   = (*Host)(nil)
	_ host.Framer = (*Host)(nil)
)
