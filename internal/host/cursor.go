package host

import (
	"fmt"
	"strings"
)

// CursorShape is a system cursor a host can display.
type CursorShape uint8

const (
	CursorDefault CursorShape = iota
	CursorText
	CursorCrosshair
	CursorPointer
	CursorEWResize
	CursorNSResize
	CursorNESWResize
	CursorNWSEResize
	CursorMove
	CursorNotAllowed
)

var cursorShapeNames = []string{
	CursorDefault:    "default",
	CursorText:       "text",
	CursorCrosshair:  "crosshair",
	CursorPointer:    "pointer",
	CursorEWResize:   "ew-resize",
	CursorNSResize:   "ns-resize",
	CursorNESWResize: "nesw-resize",
	CursorNWSEResize: "nwse-resize",
	CursorMove:       "move",
	CursorNotAllowed: "not-allowed",
}

// String returns the shape's configuration name.
func (c CursorShape) String() string {
	if int(c) < len(cursorShapeNames) {
		return cursorShapeNames[c]
	}
	return fmt.Sprintf("CursorShape(%d)", c)
}

// CursorShapeFromName parses a shape name as produced by String.
func CursorShapeFromName(name string) (CursorShape, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range cursorShapeNames {
		if n == name {
			return CursorShape(i), true
		}
	}
	return CursorDefault, false
}
