package gui

import (
	"fmt"
	"strings"
)

// MouseCursor is the cursor shape the GUI requests for the current frame.
type MouseCursor int

const (
	// MouseCursorNone asks the platform to hide the cursor.
	MouseCursorNone MouseCursor = iota - 1
	MouseCursorArrow
	MouseCursorTextInput
	MouseCursorResizeAll
	MouseCursorResizeNS
	MouseCursorResizeEW
	MouseCursorResizeNESW
	MouseCursorResizeNWSE
	MouseCursorHand
	MouseCursorNotAllowed

	// MouseCursorCount is the number of visible cursor shapes.
	MouseCursorCount
)

var mouseCursorNames = map[MouseCursor]string{
	MouseCursorNone:       "none",
	MouseCursorArrow:      "arrow",
	MouseCursorTextInput:  "text-input",
	MouseCursorResizeAll:  "resize-all",
	MouseCursorResizeNS:   "resize-ns",
	MouseCursorResizeEW:   "resize-ew",
	MouseCursorResizeNESW: "resize-nesw",
	MouseCursorResizeNWSE: "resize-nwse",
	MouseCursorHand:       "hand",
	MouseCursorNotAllowed: "not-allowed",
}

// String returns the cursor's configuration name.
func (c MouseCursor) String() string {
	if name, ok := mouseCursorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("MouseCursor(%d)", int(c))
}

// MouseCursorFromName parses a cursor name as produced by String.
func MouseCursorFromName(name string) (MouseCursor, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range mouseCursorNames {
		if n == name {
			return c, true
		}
	}
	return MouseCursorArrow, false
}
