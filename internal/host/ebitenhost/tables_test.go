package ebitenhost

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dshills/imbridge/internal/host"
)

func TestKeyTableCoversKeyCodes(t *testing.T) {
	for k := host.KeyCodeNone + 1; k < host.KeyCodeCount; k++ {
		if _, ok := keyTable[k]; !ok {
			t.Errorf("keyTable missing %v", k)
		}
	}
}

func TestKeyTableSpotChecks(t *testing.T) {
	tests := []struct {
		code host.KeyCode
		want ebiten.Key
	}{
		{host.KeyReturn, ebiten.KeyEnter},
		{host.KeyKeypadEnter, ebiten.KeyNumpadEnter},
		{host.KeyAlpha5, ebiten.KeyDigit5},
		{host.KeyF10, ebiten.KeyF10},
		{host.KeyLeftWindows, ebiten.KeyMetaLeft},
	}
	for _, tt := range tests {
		if got := keyTable[tt.code]; got != tt.want {
			t.Errorf("keyTable[%v] = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestCursorShape(t *testing.T) {
	if cursorShape(host.CursorText) != ebiten.CursorShapeText {
		t.Error("text shape mismatch")
	}
	if cursorShape(host.CursorShape(200)) != ebiten.CursorShapeDefault {
		t.Error("unknown shape should fall back to default")
	}
}

func TestHost_TextQueue(t *testing.T) {
	h := New(640, 480)
	h.queue = append(h.queue,
		host.TextEvent{Type: host.EventKeyDown, Char: 'q'},
		host.TextEvent{Type: host.EventKeyDown, Char: '\n'},
	)

	var ev host.TextEvent
	if !h.PopTextEvent(&ev) || ev.Char != 'q' {
		t.Fatalf("first event = %+v", ev)
	}
	if !h.PopTextEvent(&ev) || ev.Char != '\n' {
		t.Fatalf("second event = %+v", ev)
	}
	if h.PopTextEvent(&ev) {
		t.Error("queue should be empty")
	}
	if w, ht := h.DisplaySize(); w != 640 || ht != 480 {
		t.Errorf("DisplaySize() = %d,%d", w, ht)
	}
}
