package platform

import (
	"github.com/dshills/imbridge/internal/gui"
	"github.com/dshills/imbridge/internal/host"
)

// CursorTable maps GUI cursor requests to host cursor shapes.
type CursorTable map[gui.MouseCursor]host.CursorShape

// DefaultCursorTable returns the standard cursor mapping.
func DefaultCursorTable() CursorTable {
	return CursorTable{
		gui.MouseCursorArrow:      host.CursorDefault,
		gui.MouseCursorTextInput:  host.CursorText,
		gui.MouseCursorResizeAll:  host.CursorMove,
		gui.MouseCursorResizeNS:   host.CursorNSResize,
		gui.MouseCursorResizeEW:   host.CursorEWResize,
		gui.MouseCursorResizeNESW: host.CursorNESWResize,
		gui.MouseCursorResizeNWSE: host.CursorNWSEResize,
		gui.MouseCursorHand:       host.CursorPointer,
		gui.MouseCursorNotAllowed: host.CursorNotAllowed,
	}
}

// Merge returns a copy of t with overrides applied.
func (t CursorTable) Merge(overrides map[gui.MouseCursor]host.CursorShape) CursorTable {
	out := make(CursorTable, len(t)+len(overrides))
	for c, s := range t {
		out[c] = s
	}
	for c, s := range overrides {
		out[c] = s
	}
	return out
}

// Shape returns the host shape for c, or the default shape.
func (t CursorTable) Shape(c gui.MouseCursor) host.CursorShape {
	if s, ok := t[c]; ok {
		return s
	}
	return host.CursorDefault
}
