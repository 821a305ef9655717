package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/imbridge/internal/host"
)

type modSet uint8

const (
	modShift modSet = 1 << iota
	modCtrl
	modAlt
	modMeta
)

// keys returns the physical modifier keys standing in for the set.
// Terminals do not say which side was used; left is reported.
func (m modSet) keys() []host.KeyCode {
	var out []host.KeyCode
	if m&modShift != 0 {
		out = append(out, host.KeyLeftShift)
	}
	if m&modCtrl != 0 {
		out = append(out, host.KeyLeftControl)
	}
	if m&modAlt != 0 {
		out = append(out, host.KeyLeftAlt)
	}
	if m&modMeta != 0 {
		out = append(out, host.KeyLeftCommand)
	}
	return out
}

func convertMod(m tcell.ModMask) modSet {
	var result modSet
	if m&tcell.ModShift != 0 {
		result |= modShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= modCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= modAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= modMeta
	}
	return result
}

var specialKeys = map[tcell.Key]host.KeyCode{
	tcell.KeyTab:        host.KeyTab,
	tcell.KeyEnter:      host.KeyReturn,
	tcell.KeyEscape:     host.KeyEscape,
	tcell.KeyBackspace:  host.KeyBackspace,
	tcell.KeyBackspace2: host.KeyBackspace,
	tcell.KeyDelete:     host.KeyDelete,
	tcell.KeyInsert:     host.KeyInsert,
	tcell.KeyHome:       host.KeyHome,
	tcell.KeyEnd:        host.KeyEnd,
	tcell.KeyPgUp:       host.KeyPageUp,
	tcell.KeyPgDn:       host.KeyPageDown,
	tcell.KeyUp:         host.KeyUpArrow,
	tcell.KeyDown:       host.KeyDownArrow,
	tcell.KeyLeft:       host.KeyLeftArrow,
	tcell.KeyRight:      host.KeyRightArrow,
	tcell.KeyF1:         host.KeyF1,
	tcell.KeyF2:         host.KeyF2,
	tcell.KeyF3:         host.KeyF3,
	tcell.KeyF4:         host.KeyF4,
	tcell.KeyF5:         host.KeyF5,
	tcell.KeyF6:         host.KeyF6,
	tcell.KeyF7:         host.KeyF7,
	tcell.KeyF8:         host.KeyF8,
	tcell.KeyF9:         host.KeyF9,
	tcell.KeyF10:        host.KeyF10,
	tcell.KeyF11:        host.KeyF11,
	tcell.KeyF12:        host.KeyF12,
}

// convertKey maps a tcell key and rune to a physical key, the character
// it produced, and any modifiers implied by the key itself.
func convertKey(k tcell.Key, r rune) (host.KeyCode, rune, modSet) {
	if k == tcell.KeyRune {
		return runeKey(r)
	}
	if code, ok := specialKeys[k]; ok {
		switch code {
		case host.KeyReturn:
			return code, '\n', 0
		case host.KeyTab:
			return code, '\t', 0
		}
		return code, 0, 0
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return host.KeyA + host.KeyCode(k-tcell.KeyCtrlA), 0, modCtrl
	}
	return host.KeyCodeNone, 0, 0
}

func runeKey(r rune) (host.KeyCode, rune, modSet) {
	switch {
	case r >= 'a' && r <= 'z':
		return host.KeyA + host.KeyCode(r-'a'), r, 0
	case r >= 'A' && r <= 'Z':
		return host.KeyA + host.KeyCode(r-'A'), r, modShift
	case r >= '0' && r <= '9':
		return host.KeyAlpha0 + host.KeyCode(r-'0'), r, 0
	case r == ' ':
		return host.KeySpace, r, 0
	case unicode.IsPrint(r):
		return host.KeyCodeNone, r, 0
	default:
		return host.KeyCodeNone, 0, 0
	}
}
