package host

import (
	"fmt"
	"strings"
)

// KeyCode identifies a physical keyboard key as the host reports it.
type KeyCode uint16

const (
	// KeyCodeNone represents no key.
	KeyCodeNone KeyCode = iota

	KeyBackspace
	KeyTab
	KeyReturn
	KeyEscape
	KeySpace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUpArrow
	KeyDownArrow
	KeyLeftArrow
	KeyRightArrow
	KeyKeypadEnter

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

	KeyAlpha0
	KeyAlpha1
	KeyAlpha2
	KeyAlpha3
	KeyAlpha4
	KeyAlpha5
	KeyAlpha6
	KeyAlpha7
	KeyAlpha8
	KeyAlpha9

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

	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftCommand
	KeyRightCommand
	KeyLeftWindows
	KeyRightWindows

	// KeyCodeCount is the number of key codes. Not a valid key.
	KeyCodeCount
)

var keyCodeNames = [KeyCodeCount]string{
	KeyCodeNone:     "None",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyReturn:       "Return",
	KeyEscape:       "Escape",
	KeySpace:        "Space",
	KeyDelete:       "Delete",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyUpArrow:      "UpArrow",
	KeyDownArrow:    "DownArrow",
	KeyLeftArrow:    "LeftArrow",
	KeyRightArrow:   "RightArrow",
	KeyKeypadEnter:  "KeypadEnter",
	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightAlt:     "RightAlt",
	KeyLeftCommand:  "LeftCommand",
	KeyRightCommand: "RightCommand",
	KeyLeftWindows:  "LeftWindows",
	KeyRightWindows: "RightWindows",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyCodeNames[k] = string(rune('A' + (k - KeyA)))
	}
	for k := KeyAlpha0; k <= KeyAlpha9; k++ {
		keyCodeNames[k] = fmt.Sprintf("Alpha%d", k-KeyAlpha0)
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyCodeNames[k] = fmt.Sprintf("F%d", k-KeyF1+1)
	}
}

// String returns the key code's name.
func (k KeyCode) String() string {
	if k < KeyCodeCount {
		return keyCodeNames[k]
	}
	return fmt.Sprintf("KeyCode(%d)", k)
}

// Valid reports whether k names a real key.
func (k KeyCode) Valid() bool {
	return k > KeyCodeNone && k < KeyCodeCount
}

// KeyCodeFromName returns the KeyCode for a name (case-insensitive).
// Returns KeyCodeNone if the name is not recognized.
func KeyCodeFromName(name string) KeyCode {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KeyCodeNone
	}
	if name == "enter" {
		return KeyReturn
	}
	for k := KeyCodeNone + 1; k < KeyCodeCount; k++ {
		if strings.ToLower(keyCodeNames[k]) == name {
			return k
		}
	}
	return KeyCodeNone
}
