package evdevhost

import "github.com/dshills/imbridge/internal/host"

// Event type and code constants from linux/input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02

	relX      = 0x00
	relY      = 0x01
	relHWheel = 0x06
	relWheel  = 0x08

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112

	keyLeftCtrl   = 29
	keyLeftShift  = 42
	keyRightShift = 54
	keyLeftAlt    = 56
	keyCapsLock   = 58
	keyRightCtrl  = 97
	keyRightAlt   = 100

	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// linuxKeys maps Linux key codes to host key codes.
var linuxKeys = map[uint16]host.KeyCode{
	1:  host.KeyEscape,
	14: host.KeyBackspace,
	15: host.KeyTab,
	28: host.KeyReturn,
	57: host.KeySpace,

	102: host.KeyHome,
	103: host.KeyUpArrow,
	104: host.KeyPageUp,
	105: host.KeyLeftArrow,
	106: host.KeyRightArrow,
	107: host.KeyEnd,
	108: host.KeyDownArrow,
	109: host.KeyPageDown,
	110: host.KeyInsert,
	111: host.KeyDelete,
	96:  host.KeyKeypadEnter,

	2:  host.KeyAlpha1,
	3:  host.KeyAlpha2,
	4:  host.KeyAlpha3,
	5:  host.KeyAlpha4,
	6:  host.KeyAlpha5,
	7:  host.KeyAlpha6,
	8:  host.KeyAlpha7,
	9:  host.KeyAlpha8,
	10: host.KeyAlpha9,
	11: host.KeyAlpha0,

	16: host.KeyQ,
	17: host.KeyW,
	18: host.KeyE,
	19: host.KeyR,
	20: host.KeyT,
	21: host.KeyY,
	22: host.KeyU,
	23: host.KeyI,
	24: host.KeyO,
	25: host.KeyP,
	30: host.KeyA,
	31: host.KeyS,
	32: host.KeyD,
	33: host.KeyF,
	34: host.KeyG,
	35: host.KeyH,
	36: host.KeyJ,
	37: host.KeyK,
	38: host.KeyL,
	44: host.KeyZ,
	45: host.KeyX,
	46: host.KeyC,
	47: host.KeyV,
	48: host.KeyB,
	49: host.KeyN,
	50: host.KeyM,

	59: host.KeyF1,
	60: host.KeyF2,
	61: host.KeyF3,
	62: host.KeyF4,
	63: host.KeyF5,
	64: host.KeyF6,
	65: host.KeyF7,
	66: host.KeyF8,
	67: host.KeyF9,
	68: host.KeyF10,
	87: host.KeyF11,
	88: host.KeyF12,

	42:  host.KeyLeftShift,
	54:  host.KeyRightShift,
	29:  host.KeyLeftControl,
	97:  host.KeyRightControl,
	56:  host.KeyLeftAlt,
	100: host.KeyRightAlt,
	125: host.KeyLeftWindows,
	126: host.KeyRightWindows,
}

// usLayout maps Linux key codes to the characters they type on a US
// keyboard, unshifted and shifted.
var usLayout = map[uint16][2]rune{
	2: {'1', '!'}, 3: {'2', '@'}, 4: {'3', '#'}, 5: {'4', '$'}, 6: {'5', '%'},
	7: {'6', '^'}, 8: {'7', '&'}, 9: {'8', '*'}, 10: {'9', '('}, 11: {'0', ')'},
	12: {'-', '_'}, 13: {'=', '+'},
	15: {'\t', '\t'},
	26: {'[', '{'}, 27: {']', '}'},
	28: {'\n', '\n'},
	39: {';', ':'}, 40: {'\'', '"'}, 41: {'`', '~'}, 43: {'\\', '|'},
	51: {',', '<'}, 52: {'.', '>'}, 53: {'/', '?'},
	57: {' ', ' '},
	96: {'\n', '\n'},
}

func init() {
	for code, k := range linuxKeys {
		if k >= host.KeyA && k <= host.KeyZ {
			lower := rune('a' + (k - host.KeyA))
			usLayout[code] = [2]rune{lower, lower - 'a' + 'A'}
		}
	}
}

// translate returns the character a key press types, or 0.
func translate(code uint16, shift, capsLock bool) rune {
	chars, ok := usLayout[code]
	if !ok {
		return 0
	}
	k := linuxKeys[code]
	if k >= host.KeyA && k <= host.KeyZ && capsLock {
		shift = !shift
	}
	if shift {
		return chars[1]
	}
	return chars[0]
}
