package gui

// ConfigFlags are user-facing behaviour switches on IO.
type ConfigFlags uint32

const (
	// ConfigNone sets no flags.
	ConfigNone ConfigFlags = 0

	// ConfigNavEnableKeyboard enables keyboard navigation.
	ConfigNavEnableKeyboard ConfigFlags = 1 << iota

	// ConfigNoMouseCursorChange stops the platform from touching the
	// host's cursor shape or visibility.
	ConfigNoMouseCursorChange
)

// BackendFlags describe what the platform backend supports.
type BackendFlags uint32

const (
	// BackendNone sets no flags.
	BackendNone BackendFlags = 0

	// BackendHasMouseCursors reports that the backend honors MouseCursor.
	BackendHasMouseCursors BackendFlags = 1 << iota
)

// MouseButtonCount is the number of mouse buttons IO tracks.
const MouseButtonCount = 5

// Mouse button indices into IO.MouseDown.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// Vec2 is a 2D vector in GUI space (origin top-left, Y down).
type Vec2 struct {
	X, Y float32
}

// KeyEvent is a single key transition reported to IO.
type KeyEvent struct {
	Key  Key
	Down bool
}

// IO is the per-frame input/output state shared between the platform
// backend and the GUI. It is not safe for concurrent use; one goroutine
// owns it for the duration of a frame.
type IO struct {
	// DisplaySize is the main display size in pixels.
	DisplaySize Vec2

	// DeltaTime is the time elapsed since the previous frame, in seconds.
	DeltaTime float32

	ConfigFlags         ConfigFlags
	BackendFlags        BackendFlags
	BackendPlatformName string

	// Modifier flags, written by the backend every frame.
	KeyShift bool
	KeyCtrl  bool
	KeyAlt   bool
	KeySuper bool

	// MousePos is the mouse position in GUI space.
	MousePos Vec2

	// MouseWheel is the vertical wheel delta; positive scrolls up.
	MouseWheel float32

	// MouseWheelH is the horizontal wheel delta; positive scrolls right.
	MouseWheelH float32

	// MouseDown holds button state: 0 left, 1 right, 2 middle.
	MouseDown [MouseButtonCount]bool

	// MouseDrawCursor asks the GUI to draw its own cursor, in which case
	// the platform hides the host cursor.
	MouseDrawCursor bool

	// Clipboard hooks installed by the platform.
	GetClipboardText func() string
	SetClipboardText func(text string)

	keysDown    [KeyCount]bool
	keyEvents   []KeyEvent
	inputChars  []rune
	mouseCursor MouseCursor
}

// NewIO returns an IO with default settings.
func NewIO() *IO {
	return &IO{
		DeltaTime:   1.0 / 60.0,
		mouseCursor: MouseCursorArrow,
	}
}

// AddKeyEvent queues a key transition and updates the key-down state.
// Invalid keys are ignored.
func (io *IO) AddKeyEvent(k Key, down bool) {
	if !k.Valid() {
		return
	}
	io.keyEvents = append(io.keyEvents, KeyEvent{Key: k, Down: down})
	io.keysDown[k] = down
}

// AddInputCharacter queues a character for text input. Zero is ignored.
func (io *IO) AddInputCharacter(r rune) {
	if r == 0 {
		return
	}
	io.inputChars = append(io.inputChars, r)
}

// AddInputCharacters queues every rune of s.
func (io *IO) AddInputCharacters(s string) {
	for _, r := range s {
		io.AddInputCharacter(r)
	}
}

// IsKeyDown reports the last state written for k.
func (io *IO) IsKeyDown(k Key) bool {
	if !k.Valid() {
		return false
	}
	return io.keysDown[k]
}

// KeysDown returns every key currently held, in Key order.
func (io *IO) KeysDown() []Key {
	var keys []Key
	for k := KeyNone + 1; k < KeyCount; k++ {
		if io.keysDown[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// KeyEvents returns a copy of this frame's key transitions in order.
func (io *IO) KeyEvents() []KeyEvent {
	out := make([]KeyEvent, len(io.keyEvents))
	copy(out, io.keyEvents)
	return out
}

// InputCharacters returns a copy of this frame's queued characters.
func (io *IO) InputCharacters() []rune {
	out := make([]rune, len(io.inputChars))
	copy(out, io.inputChars)
	return out
}

// KeyMods combines the modifier flags into a Modifier.
func (io *IO) KeyMods() Modifier {
	var m Modifier
	if io.KeyShift {
		m = m.With(ModShift)
	}
	if io.KeyCtrl {
		m = m.With(ModCtrl)
	}
	if io.KeyAlt {
		m = m.With(ModAlt)
	}
	if io.KeySuper {
		m = m.With(ModSuper)
	}
	return m
}

// SetMouseCursor records the cursor the GUI wants for this frame.
func (io *IO) SetMouseCursor(c MouseCursor) {
	io.mouseCursor = c
}

// MouseCursor returns the cursor requested for this frame.
func (io *IO) MouseCursor() MouseCursor {
	return io.mouseCursor
}

// NewFrame clears the per-frame accumulators: key events, input
// characters and wheel deltas. Key-down state persists until a
// key-up event is added.
func (io *IO) NewFrame() {
	io.keyEvents = io.keyEvents[:0]
	io.inputChars = io.inputChars[:0]
	io.MouseWheel = 0
	io.MouseWheelH = 0
}
