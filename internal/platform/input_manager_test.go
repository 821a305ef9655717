package platform

import (
	"io"
	"testing"
	"time"

	"github.com/kataras/golog"

	"github.com/dshills/imbridge/internal/gui"
	"github.com/dshills/imbridge/internal/host"
	"github.com/dshills/imbridge/internal/host/sim"
)

func quietLogger() *golog.Logger {
	l := golog.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestManager(t *testing.T, h *sim.Host, cfg Config) (*InputManager, *gui.IO) {
	t.Helper()
	m := NewInputManager(h, WithLogger(quietLogger()))
	io := gui.NewIO()
	if !m.Initialize(io, cfg, "test") {
		t.Fatal("Initialize() returned false")
	}
	return m, io
}

func frame(m *InputManager, io *gui.IO, h *sim.Host) {
	io.NewFrame()
	w, ht := h.DisplaySize()
	m.PrepareFrame(io, RectFromSize(w, ht))
	h.BeginFrame()
}

func TestInputManager_Initialize(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())

	if io.BackendPlatformName != "test" {
		t.Errorf("BackendPlatformName = %q, want test", io.BackendPlatformName)
	}
	if io.BackendFlags&gui.BackendHasMouseCursors == 0 {
		t.Error("BackendHasMouseCursors not set")
	}
	if io.GetClipboardText == nil || io.SetClipboardText == nil {
		t.Error("clipboard hooks not installed")
	}
	if m.KeyMap().Len() != DefaultKeyMap().Len() {
		t.Errorf("KeyMap().Len() = %d, want %d", m.KeyMap().Len(), DefaultKeyMap().Len())
	}
}

func TestInputManager_MappedKeysReportedDownOncePerFrame(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())

	DefaultKeyMap().Each(func(e KeyMapping) {
		h.Press(e.Physical)
	})
	frame(m, io, h)

	counts := make(map[gui.Key]int)
	for _, ev := range io.KeyEvents() {
		if !ev.Down {
			t.Errorf("unexpected key-up for %v", ev.Key)
		}
		counts[ev.Key]++
	}
	DefaultKeyMap().Each(func(e KeyMapping) {
		if counts[e.Logical] != 1 {
			t.Errorf("%v reported %d times, want 1", e.Logical, counts[e.Logical])
		}
		if !io.IsKeyDown(e.Logical) {
			t.Errorf("%v should be down", e.Logical)
		}
	})
}

func TestInputManager_HeldKeyRepeatsEveryFrame(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())

	h.Press(host.KeyTab)
	for i := 0; i < 3; i++ {
		frame(m, io, h)
		events := io.KeyEvents()
		if len(events) != 1 || events[0] != (gui.KeyEvent{Key: gui.KeyTab, Down: true}) {
			t.Fatalf("frame %d: KeyEvents() = %+v", i, events)
		}
	}
}

func TestInputManager_UnmappedKeysIgnored(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())

	h.Press(host.KeyQ, host.KeyF5, host.KeyLeftShift)
	frame(m, io, h)

	if n := len(io.KeyEvents()); n != 0 {
		t.Errorf("got %d key events for unmapped keys, want 0", n)
	}
}

func TestInputManager_KeyUp(t *testing.T) {
	tests := []struct {
		name      string
		emitKeyUp bool
		wantUp    bool
	}{
		{"emit key-up", true, true},
		{"down only", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := sim.New()
			cfg := DefaultConfig()
			cfg.EmitKeyUp = tt.emitKeyUp
			m, io := newTestManager(t, h, cfg)

			h.Press(host.KeyDelete)
			frame(m, io, h)
			h.Release(host.KeyDelete)
			frame(m, io, h)

			events := io.KeyEvents()
			if tt.wantUp {
				if len(events) != 1 || events[0] != (gui.KeyEvent{Key: gui.KeyDelete, Down: false}) {
					t.Fatalf("KeyEvents() = %+v, want one Delete up", events)
				}
				if io.IsKeyDown(gui.KeyDelete) {
					t.Error("Delete should read as up")
				}
			} else {
				if len(events) != 0 {
					t.Fatalf("KeyEvents() = %+v, want none", events)
				}
				if !io.IsKeyDown(gui.KeyDelete) {
					t.Error("down-only mode leaves Delete held")
				}
			}

			frame(m, io, h)
			if n := len(io.KeyEvents()); n != 0 {
				t.Errorf("third frame produced %d events, want 0", n)
			}
		})
	}
}

func TestInputManager_SharedLogicalKeyReportedOnce(t *testing.T) {
	h := sim.New()
	cfg := DefaultConfig()
	cfg.ExtraKeys = map[host.KeyCode]gui.Key{host.KeyKeypadEnter: gui.KeyEnter}
	m, io := newTestManager(t, h, cfg)

	h.Press(host.KeyReturn, host.KeyKeypadEnter)
	frame(m, io, h)

	events := io.KeyEvents()
	if len(events) != 1 || events[0].Key != gui.KeyEnter {
		t.Fatalf("KeyEvents() = %+v, want single Enter", events)
	}

	h.Release(host.KeyReturn)
	frame(m, io, h)
	if events := io.KeyEvents(); len(events) != 1 || !events[0].Down {
		t.Fatalf("Enter still held through keypad: %+v", events)
	}
}

func TestInputManager_Modifiers(t *testing.T) {
	tests := []struct {
		name  string
		keys  []host.KeyCode
		shift bool
		ctrl  bool
		alt   bool
		super bool
	}{
		{"none", nil, false, false, false, false},
		{"left shift", []host.KeyCode{host.KeyLeftShift}, true, false, false, false},
		{"right shift", []host.KeyCode{host.KeyRightShift}, true, false, false, false},
		{"both controls", []host.KeyCode{host.KeyLeftControl, host.KeyRightControl}, false, true, false, false},
		{"right control", []host.KeyCode{host.KeyRightControl}, false, true, false, false},
		{"left alt", []host.KeyCode{host.KeyLeftAlt}, false, false, true, false},
		{"right alt", []host.KeyCode{host.KeyRightAlt}, false, false, true, false},
		{"left command", []host.KeyCode{host.KeyLeftCommand}, false, false, false, true},
		{"right command", []host.KeyCode{host.KeyRightCommand}, false, false, false, true},
		{"left windows", []host.KeyCode{host.KeyLeftWindows}, false, false, false, true},
		{"right windows", []host.KeyCode{host.KeyRightWindows}, false, false, false, true},
		{"all", []host.KeyCode{host.KeyRightShift, host.KeyLeftControl, host.KeyRightAlt, host.KeyLeftWindows}, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := sim.New()
			m, io := newTestManager(t, h, DefaultConfig())
			h.Press(tt.keys...)
			frame(m, io, h)

			if io.KeyShift != tt.shift || io.KeyCtrl != tt.ctrl || io.KeyAlt != tt.alt || io.KeySuper != tt.super {
				t.Errorf("mods = shift:%v ctrl:%v alt:%v super:%v, want %v %v %v %v",
					io.KeyShift, io.KeyCtrl, io.KeyAlt, io.KeySuper,
					tt.shift, tt.ctrl, tt.alt, tt.super)
			}
		})
	}
}

func TestInputManager_ModifiersClearOnRelease(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())

	h.Press(host.KeyLeftControl)
	frame(m, io, h)
	h.Release(host.KeyLeftControl)
	frame(m, io, h)

	if io.KeyCtrl {
		t.Error("KeyCtrl should clear after release")
	}
}

func TestInputManager_TextInput(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())

	h.Queue(
		host.TextEvent{Type: host.EventKeyDown, Char: 'a'},
		host.TextEvent{Type: host.EventKeyDown, Char: '\n'},
	)
	frame(m, io, h)

	if got := string(io.InputCharacters()); got != "a" {
		t.Errorf("InputCharacters() = %q, want %q", got, "a")
	}
	if h.Pending() != 0 {
		t.Errorf("queue not drained: %d pending", h.Pending())
	}
}

func TestInputManager_TextInputFiltering(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())

	h.Queue(
		host.TextEvent{Type: host.EventKeyDown, Char: 'h'},
		host.TextEvent{Type: host.EventKeyDown, Char: 0, Key: host.KeyLeftArrow},
		host.TextEvent{Type: host.EventKeyUp, Char: 'x'},
		host.TextEvent{Type: host.EventNone, Char: 'y'},
		host.TextEvent{Type: host.EventKeyDown, Char: '\t'},
		host.TextEvent{Type: host.EventKeyDown, Char: 'é'},
		host.TextEvent{Type: host.EventKeyDown, Char: '\n'},
		host.TextEvent{Type: host.EventKeyDown, Char: 'i'},
	)
	frame(m, io, h)

	if got := string(io.InputCharacters()); got != "h\téi" {
		t.Errorf("InputCharacters() = %q, want %q", got, "h\téi")
	}

	// Consumed events are not forwarded again.
	frame(m, io, h)
	if n := len(io.InputCharacters()); n != 0 {
		t.Errorf("second frame forwarded %d characters, want 0", n)
	}
}

func TestInputManager_MousePosition(t *testing.T) {
	tests := []struct {
		name   string
		origin host.Origin
		x, y   float32
		want   gui.Vec2
	}{
		{"bottom-left flips", host.OriginBottomLeft, 100, 50, gui.Vec2{X: 100, Y: 550}},
		{"bottom-left corner", host.OriginBottomLeft, 0, 0, gui.Vec2{X: 0, Y: 600}},
		{"top-left passthrough", host.OriginTopLeft, 100, 50, gui.Vec2{X: 100, Y: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := sim.New(sim.WithOrigin(tt.origin), sim.WithDisplaySize(800, 600))
			m, io := newTestManager(t, h, DefaultConfig())
			h.MoveMouse(tt.x, tt.y)
			frame(m, io, h)

			if io.MousePos != tt.want {
				t.Errorf("MousePos = %+v, want %+v", io.MousePos, tt.want)
			}
		})
	}
}

func TestInputManager_MouseWheelAndButtons(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())

	h.Scroll(-1.5, 2)
	h.SetMouseButton(host.MouseLeft, true)
	h.SetMouseButton(host.MouseMiddle, true)
	frame(m, io, h)

	if io.MouseWheel != 2 || io.MouseWheelH != -1.5 {
		t.Errorf("wheel = (%v, %v), want (2, -1.5)", io.MouseWheel, io.MouseWheelH)
	}
	want := [gui.MouseButtonCount]bool{true, false, true, false, false}
	if io.MouseDown != want {
		t.Errorf("MouseDown = %v, want %v", io.MouseDown, want)
	}

	h.SetMouseButton(host.MouseLeft, false)
	h.SetMouseButton(host.MouseRight, true)
	frame(m, io, h)

	want = [gui.MouseButtonCount]bool{false, true, true, false, false}
	if io.MouseDown != want {
		t.Errorf("MouseDown = %v, want %v", io.MouseDown, want)
	}
	if io.MouseWheel != 0 || io.MouseWheelH != 0 {
		t.Errorf("wheel = (%v, %v), want zero after host frame", io.MouseWheel, io.MouseWheelH)
	}
}

func TestInputManager_DisplayAndDeltaTime(t *testing.T) {
	h := sim.New(sim.WithDisplaySize(1280, 720))
	clock := time.Unix(1000, 0)
	m := NewInputManager(h,
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return clock }),
	)
	io := gui.NewIO()
	m.Initialize(io, DefaultConfig(), "test")

	m.PrepareFrame(io, RectFromSize(1280, 720))
	if io.DisplaySize != (gui.Vec2{X: 1280, Y: 720}) {
		t.Errorf("DisplaySize = %+v", io.DisplaySize)
	}
	if io.DeltaTime != float32(firstFrameDelta) {
		t.Errorf("first DeltaTime = %v, want %v", io.DeltaTime, float32(firstFrameDelta))
	}

	clock = clock.Add(20 * time.Millisecond)
	m.PrepareFrame(io, RectFromSize(1280, 720))
	if d := io.DeltaTime - 0.02; d > 1e-6 || d < -1e-6 {
		t.Errorf("DeltaTime = %v, want 0.02", io.DeltaTime)
	}

	m.PrepareFrame(io, RectFromSize(1280, 720))
	if io.DeltaTime != float32(minFrameDelta) {
		t.Errorf("zero-elapsed DeltaTime = %v, want %v", io.DeltaTime, float32(minFrameDelta))
	}
}

func TestInputManager_Shutdown(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())
	m.Shutdown(io)

	if io.GetClipboardText != nil || io.SetClipboardText != nil {
		t.Error("Shutdown should remove clipboard hooks")
	}
	if io.BackendPlatformName != "" {
		t.Error("Shutdown should clear BackendPlatformName")
	}
}

func TestNew(t *testing.T) {
	h := sim.New()
	p, err := New(KindInputManager, h)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := p.(*InputManager); !ok {
		t.Errorf("New() = %T, want *InputManager", p)
	}

	if _, err := New("sdl", h); err == nil {
		t.Error("New(sdl) should fail")
	}
}
