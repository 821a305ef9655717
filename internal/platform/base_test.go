package platform

import (
	"errors"
	"testing"

	"github.com/dshills/imbridge/internal/gui"
	"github.com/dshills/imbridge/internal/host"
	"github.com/dshills/imbridge/internal/host/sim"
)

func TestBase_UpdateCursor(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())

	io.SetMouseCursor(gui.MouseCursorTextInput)
	frame(m, io, h)
	frame(m, io, h)

	if len(h.ShapeCalls) != 1 || h.ShapeCalls[0] != host.CursorText {
		t.Fatalf("ShapeCalls = %v, want [text]", h.ShapeCalls)
	}

	io.SetMouseCursor(gui.MouseCursorHand)
	frame(m, io, h)
	if h.CursorShape() != host.CursorPointer {
		t.Errorf("CursorShape() = %v, want pointer", h.CursorShape())
	}
	if len(h.ShapeCalls) != 2 {
		t.Errorf("ShapeCalls = %v, want 2 calls", h.ShapeCalls)
	}
}

func TestBase_UpdateCursorHidden(t *testing.T) {
	h := sim.New()
	m, io := newTestManager(t, h, DefaultConfig())

	io.SetMouseCursor(gui.MouseCursorNone)
	frame(m, io, h)
	if h.CursorVisible() {
		t.Error("cursor should be hidden for MouseCursorNone")
	}

	io.SetMouseCursor(gui.MouseCursorArrow)
	io.MouseDrawCursor = true
	frame(m, io, h)
	if h.CursorVisible() {
		t.Error("cursor should be hidden while the GUI draws its own")
	}

	io.MouseDrawCursor = false
	frame(m, io, h)
	if !h.CursorVisible() {
		t.Error("cursor should be visible again")
	}
	if want := []bool{false, true}; len(h.VisibleCalls) != 2 || h.VisibleCalls[0] != want[0] || h.VisibleCalls[1] != want[1] {
		t.Errorf("VisibleCalls = %v, want %v", h.VisibleCalls, want)
	}
}

func TestBase_NoMouseCursorChange(t *testing.T) {
	h := sim.New()
	cfg := DefaultConfig()
	cfg.NoMouseCursorChange = true
	m, io := newTestManager(t, h, cfg)

	if io.ConfigFlags&gui.ConfigNoMouseCursorChange == 0 {
		t.Fatal("ConfigNoMouseCursorChange not set")
	}

	io.SetMouseCursor(gui.MouseCursorNone)
	frame(m, io, h)
	io.SetMouseCursor(gui.MouseCursorResizeEW)
	frame(m, io, h)

	if len(h.ShapeCalls) != 0 || len(h.VisibleCalls) != 0 {
		t.Errorf("host cursor touched: shapes %v, visible %v", h.ShapeCalls, h.VisibleCalls)
	}
}

func TestBase_CursorOverrides(t *testing.T) {
	h := sim.New()
	cfg := DefaultConfig()
	cfg.CursorShapes = map[gui.MouseCursor]host.CursorShape{
		gui.MouseCursorHand: host.CursorCrosshair,
	}
	m, io := newTestManager(t, h, cfg)

	io.SetMouseCursor(gui.MouseCursorHand)
	frame(m, io, h)
	if h.CursorShape() != host.CursorCrosshair {
		t.Errorf("CursorShape() = %v, want crosshair", h.CursorShape())
	}
}

func TestBase_Clipboard(t *testing.T) {
	h := sim.New()
	clip := NewMemoryClipboard()
	m := NewInputManager(h, WithLogger(quietLogger()), WithClipboard(clip))
	io := gui.NewIO()
	m.Initialize(io, DefaultConfig(), "test")

	io.SetClipboardText("copied")
	if got, _ := clip.ReadText(); got != "copied" {
		t.Errorf("clipboard = %q, want copied", got)
	}
	if got := io.GetClipboardText(); got != "copied" {
		t.Errorf("GetClipboardText() = %q, want copied", got)
	}
}

type failingClipboard struct{}

func (failingClipboard) ReadText() (string, error) { return "stale", errors.New("no clipboard") }
func (failingClipboard) WriteText(string) error    { return errors.New("no clipboard") }

func TestBase_ClipboardErrors(t *testing.T) {
	h := sim.New()
	m := NewInputManager(h, WithLogger(quietLogger()), WithClipboard(failingClipboard{}))
	io := gui.NewIO()
	m.Initialize(io, DefaultConfig(), "test")

	io.SetClipboardText("x")
	if got := io.GetClipboardText(); got != "" {
		t.Errorf("GetClipboardText() = %q, want empty on error", got)
	}
}

func TestCursorTable(t *testing.T) {
	table := DefaultCursorTable()
	for c := gui.MouseCursorArrow; c < gui.MouseCursorCount; c++ {
		if _, ok := table[c]; !ok {
			t.Errorf("DefaultCursorTable missing %v", c)
		}
	}

	merged := table.Merge(map[gui.MouseCursor]host.CursorShape{gui.MouseCursorArrow: host.CursorMove})
	if merged.Shape(gui.MouseCursorArrow) != host.CursorMove {
		t.Error("Merge did not apply override")
	}
	if table.Shape(gui.MouseCursorArrow) != host.CursorDefault {
		t.Error("Merge modified the receiver")
	}
	if table.Shape(gui.MouseCursor(42)) != host.CursorDefault {
		t.Error("unknown cursor should map to default")
	}
}

func TestScreenToGUI(t *testing.T) {
	got := ScreenToGUI(host.Point{X: 100, Y: 50}, 600, host.OriginBottomLeft)
	if got != (gui.Vec2{X: 100, Y: 550}) {
		t.Errorf("ScreenToGUI() = %+v, want {100 550}", got)
	}
	got = ScreenToGUI(host.Point{X: 3, Y: 4}, 600, host.OriginTopLeft)
	if got != (gui.Vec2{X: 3, Y: 4}) {
		t.Errorf("ScreenToGUI() = %+v, want {3 4}", got)
	}
}
