//go:build linux

package evdevhost

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bendahl/uinput"
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/dshills/imbridge/internal/host"
)

func TestHost_KeyState(t *testing.T) {
	h := newHost()

	h.handle(evKey, 30, valuePress)
	h.handle(evKey, keyRightCtrl, valuePress)
	if !h.KeyDown(host.KeyA) || !h.KeyDown(host.KeyRightControl) {
		t.Fatal("pressed keys should be down")
	}

	h.handle(evKey, 30, valueRelease)
	if h.KeyDown(host.KeyA) {
		t.Error("released key should be up")
	}
	if h.KeyDown(host.KeyCodeNone) {
		t.Error("KeyCodeNone is never down")
	}
}

func TestHost_TextEvents(t *testing.T) {
	h := newHost()

	h.handle(evKey, keyLeftShift, valuePress)
	h.handle(evKey, 35, valuePress) // h
	h.handle(evKey, 35, valueRelease)
	h.handle(evKey, keyLeftShift, valueRelease)
	h.handle(evKey, 23, valuePress) // i
	h.handle(evKey, 23, valueRepeat)
	h.handle(evKey, keyLeftCtrl, valuePress)
	h.handle(evKey, 46, valuePress) // ctrl+c

	var chars []rune
	var ev host.TextEvent
	for h.PopTextEvent(&ev) {
		if ev.Type != host.EventKeyDown {
			t.Errorf("event type = %v, want key down", ev.Type)
		}
		if ev.Char != 0 {
			chars = append(chars, ev.Char)
		}
	}
	if string(chars) != "Hii" {
		t.Errorf("typed %q, want %q", string(chars), "Hii")
	}
}

func TestHost_CapsLockToggles(t *testing.T) {
	h := newHost()
	h.handle(evKey, keyCapsLock, valuePress)
	h.handle(evKey, keyCapsLock, valueRelease)
	h.handle(evKey, 30, valuePress)

	var ev host.TextEvent
	var last rune
	for h.PopTextEvent(&ev) {
		last = ev.Char
	}
	if last != 'A' {
		t.Errorf("last char = %q, want 'A'", last)
	}
}

func TestHost_Mouse(t *testing.T) {
	h := newHost(WithDisplaySize(100, 50))
	if got := h.MousePosition(); got != (host.Point{X: 50, Y: 25}) {
		t.Fatalf("start position = %+v, want center", got)
	}

	h.handle(evRel, relX, 500)
	h.handle(evRel, relY, -500)
	if got := h.MousePosition(); got != (host.Point{X: 99, Y: 0}) {
		t.Errorf("clamped position = %+v, want {99 0}", got)
	}

	h.handle(evRel, relWheel, 1)
	h.handle(evRel, relWheel, 2)
	h.handle(evRel, relHWheel, -1)
	if got := h.ScrollDelta(); got != (host.Point{}) {
		t.Errorf("scroll visible before BeginFrame: %+v", got)
	}
	h.BeginFrame()
	if got := h.ScrollDelta(); got != (host.Point{X: -1, Y: 3}) {
		t.Errorf("ScrollDelta() = %+v, want {-1 3}", got)
	}
	h.BeginFrame()
	if got := h.ScrollDelta(); got != (host.Point{}) {
		t.Errorf("ScrollDelta() = %+v, want zero", got)
	}

	h.handle(evKey, btnRight, valuePress)
	if !h.MouseButtonDown(host.MouseRight) || h.MouseButtonDown(host.MouseLeft) {
		t.Error("expected only right button down")
	}
	var ev host.TextEvent
	if h.PopTextEvent(&ev) {
		t.Errorf("mouse button queued text %+v", ev)
	}
}

func TestOpen_NoDevices(t *testing.T) {
	_, err := Open([]string{filepath.Join(t.TempDir(), "event99")})
	if err != ErrNoDevices {
		t.Errorf("Open() error = %v, want ErrNoDevices", err)
	}
}

// TestHost_VirtualKeyboard drives a real evdev node through a uinput
// keyboard. It needs write access to /dev/uinput.
func TestHost_VirtualKeyboard(t *testing.T) {
	if f, err := os.OpenFile("/dev/uinput", os.O_WRONLY, 0); err != nil {
		t.Skipf("uinput unavailable: %v", err)
	} else {
		f.Close()
	}

	const name = "imbridge-test-keyboard"
	kb, err := uinput.CreateKeyboard("/dev/uinput", []byte(name))
	if err != nil {
		t.Skipf("CreateKeyboard: %v", err)
	}
	defer kb.Close()

	node := findDevice(t, name)
	h, err := Open([]string{node})
	if err != nil {
		t.Fatalf("Open(%s) error = %v", node, err)
	}
	defer h.Close()

	if err := kb.KeyDown(uinput.KeyA); err != nil {
		t.Fatalf("KeyDown: %v", err)
	}
	waitFor(t, func() bool { return h.KeyDown(host.KeyA) })

	if err := kb.KeyUp(uinput.KeyA); err != nil {
		t.Fatalf("KeyUp: %v", err)
	}
	waitFor(t, func() bool { return !h.KeyDown(host.KeyA) })

	var ev host.TextEvent
	if !h.PopTextEvent(&ev) || ev.Char != 'a' {
		t.Errorf("text event = %+v, want 'a'", ev)
	}
}

func findDevice(t *testing.T, name string) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		nodes, _ := filepath.Glob(DefaultGlob)
		for _, node := range nodes {
			dev, err := evdev.Open(node)
			if err != nil {
				continue
			}
			match := dev.Name == name
			dev.File.Close()
			if match {
				return node
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Skipf("virtual device %q not visible under %s", name, DefaultGlob)
	return ""
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met within 2s")
}
