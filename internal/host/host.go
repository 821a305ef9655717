package host

// Point is a position or delta in host screen space.
type Point struct {
	X, Y float32
}

// Origin describes where a host puts (0, 0).
type Origin uint8

const (
	// OriginTopLeft means Y grows downward (terminals, most windowing APIs).
	OriginTopLeft Origin = iota

	// OriginBottomLeft means Y grows upward (most game engines).
	OriginBottomLeft
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginTopLeft:
		return "top-left"
	case OriginBottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// Mouse buttons as host indices.
const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
)

// EventType classifies a queued text event.
type EventType uint8

const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
)

// TextEvent is one entry in a host's pending text-input queue.
type TextEvent struct {
	Type EventType

	// Char is the character produced, or 0 for non-printing keys.
	Char rune

	// Key is the physical key, when the host knows it.
	Key KeyCode
}

// Input is the read side of a host.
type Input interface {
	// KeyDown reports whether the physical key is currently held.
	KeyDown(k KeyCode) bool

	// MouseButtonDown reports whether mouse button b is held.
	MouseButtonDown(b int) bool

	// MousePosition returns the raw mouse position in host screen space.
	MousePosition() Point

	// ScrollDelta returns this frame's wheel movement. Y is vertical.
	ScrollDelta() Point

	// PopTextEvent removes the oldest pending text event into ev.
	// Returns false when the queue is empty.
	PopTextEvent(ev *TextEvent) bool

	// Origin reports the host's screen-space convention.
	Origin() Origin
}

// Cursor is the write side of a host: the visible system cursor.
type Cursor interface {
	SetCursorShape(shape CursorShape)
	SetCursorVisible(visible bool)
}

// Display reports the host's drawable size in pixels (or cells).
type Display interface {
	DisplaySize() (width, height int)
}

// Host is a complete host: input, cursor and display.
type Host interface {
	Input
	Cursor
	Display
}

// Framer is implemented by hosts that collect events asynchronously and
// need a frame boundary to latch them into a stable snapshot.
type Framer interface {
	BeginFrame()
}

// Closer is implemented by hosts that hold devices or terminals open.
type Closer interface {
	Close() error
}
