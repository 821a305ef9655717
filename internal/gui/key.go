package gui

import (
	"fmt"
	"strings"
)

// Key identifies a logical GUI key.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Editing and control keys
	KeyTab
	KeyEnter
	KeyKeypadEnter
	KeyEscape
	KeySpace
	KeyBackspace
	KeyDelete
	KeyInsert

	// Navigation keys
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digits
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifier keys
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper

	// KeyCount is the number of logical keys. Not a valid key.
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:        "None",
	KeyTab:         "Tab",
	KeyEnter:       "Enter",
	KeyKeypadEnter: "KeypadEnter",
	KeyEscape:      "Escape",
	KeySpace:       "Space",
	KeyBackspace:   "Backspace",
	KeyDelete:      "Delete",
	KeyInsert:      "Insert",
	KeyLeftArrow:   "LeftArrow",
	KeyRightArrow:  "RightArrow",
	KeyUpArrow:     "UpArrow",
	KeyDownArrow:   "DownArrow",
	KeyPageUp:      "PageUp",
	KeyPageDown:    "PageDown",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyLeftShift:   "LeftShift",
	KeyRightShift:  "RightShift",
	KeyLeftCtrl:    "LeftCtrl",
	KeyRightCtrl:   "RightCtrl",
	KeyLeftAlt:     "LeftAlt",
	KeyRightAlt:    "RightAlt",
	KeyLeftSuper:   "LeftSuper",
	KeyRightSuper:  "RightSuper",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + (k - KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + (k - Key0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("F%d", k-KeyF1+1)
	}
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// Valid reports whether k is a real key (not KeyNone, below KeyCount).
func (k Key) Valid() bool {
	return k > KeyNone && k < KeyCount
}

// IsLetter returns true for A through Z.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyLeftArrow && k <= KeyDownArrow
}

// IsNavigationKey returns true if this is a navigation key.
func (k Key) IsNavigationKey() bool {
	return k >= KeyLeftArrow && k <= KeyEnd
}

// IsModifier returns true for the left and right modifier keys.
func (k Key) IsModifier() bool {
	return k >= KeyLeftShift && k <= KeyRightSuper
}

// keyAliases maps alternative names (lowercase) to Key values.
var keyAliases = map[string]Key{
	"esc":     KeyEscape,
	"return":  KeyEnter,
	"cr":      KeyEnter,
	"kpenter": KeyKeypadEnter,
	"bs":      KeyBackspace,
	"del":     KeyDelete,
	"ins":     KeyInsert,
	"left":    KeyLeftArrow,
	"right":   KeyRightArrow,
	"up":      KeyUpArrow,
	"down":    KeyDownArrow,
	"pgup":    KeyPageUp,
	"pgdn":    KeyPageDown,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KeyNone
	}
	if k, ok := keyAliases[name]; ok {
		return k
	}
	for k := KeyNone + 1; k < KeyCount; k++ {
		if strings.ToLower(keyNames[k]) == name {
			return k
		}
	}
	return KeyNone
}
