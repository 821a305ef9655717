package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dshills/imbridge/internal/host"
)

var keyTable = map[host.KeyCode]ebiten.Key{
	host.KeyBackspace:   ebiten.KeyBackspace,
	host.KeyTab:         ebiten.KeyTab,
	host.KeyReturn:      ebiten.KeyEnter,
	host.KeyEscape:      ebiten.KeyEscape,
	host.KeySpace:       ebiten.KeySpace,
	host.KeyDelete:      ebiten.KeyDelete,
	host.KeyInsert:      ebiten.KeyInsert,
	host.KeyHome:        ebiten.KeyHome,
	host.KeyEnd:         ebiten.KeyEnd,
	host.KeyPageUp:      ebiten.KeyPageUp,
	host.KeyPageDown:    ebiten.KeyPageDown,
	host.KeyUpArrow:     ebiten.KeyArrowUp,
	host.KeyDownArrow:   ebiten.KeyArrowDown,
	host.KeyLeftArrow:   ebiten.KeyArrowLeft,
	host.KeyRightArrow:  ebiten.KeyArrowRight,
	host.KeyKeypadEnter: ebiten.KeyNumpadEnter,

	host.KeyA: ebiten.KeyA,
	host.KeyB: ebiten.KeyB,
	host.KeyC: ebiten.KeyC,
	host.KeyD: ebiten.KeyD,
	host.KeyE: ebiten.KeyE,
	host.KeyF: ebiten.KeyF,
	host.KeyG: ebiten.KeyG,
	host.KeyH: ebiten.KeyH,
	host.KeyI: ebiten.KeyI,
	host.KeyJ: ebiten.KeyJ,
	host.KeyK: ebiten.KeyK,
	host.KeyL: ebiten.KeyL,
	host.KeyM: ebiten.KeyM,
	host.KeyN: ebiten.KeyN,
	host.KeyO: ebiten.KeyO,
	host.KeyP: ebiten.KeyP,
	host.KeyQ: ebiten.KeyQ,
	host.KeyR: ebiten.KeyR,
	host.KeyS: ebiten.KeyS,
	host.KeyT: ebiten.KeyT,
	host.KeyU: ebiten.KeyU,
	host.KeyV: ebiten.KeyV,
	host.KeyW: ebiten.KeyW,
	host.KeyX: ebiten.KeyX,
	host.KeyY: ebiten.KeyY,
	host.KeyZ: ebiten.KeyZ,

	host.KeyAlpha0: ebiten.KeyDigit0,
	host.KeyAlpha1: ebiten.KeyDigit1,
	host.KeyAlpha2: ebiten.KeyDigit2,
	host.KeyAlpha3: ebiten.KeyDigit3,
	host.KeyAlpha4: ebiten.KeyDigit4,
	host.KeyAlpha5: ebiten.KeyDigit5,
	host.KeyAlpha6: ebiten.KeyDigit6,
	host.KeyAlpha7: ebiten.KeyDigit7,
	host.KeyAlpha8: ebiten.KeyDigit8,
	host.KeyAlpha9: ebiten.KeyDigit9,

	host.KeyF1:  ebiten.KeyF1,
	host.KeyF2:  ebiten.KeyF2,
	host.KeyF3:  ebiten.KeyF3,
	host.KeyF4:  ebiten.KeyF4,
	host.KeyF5:  ebiten.KeyF5,
	host.KeyF6:  ebiten.KeyF6,
	host.KeyF7:  ebiten.KeyF7,
	host.KeyF8:  ebiten.KeyF8,
	host.KeyF9:  ebiten.KeyF9,
	host.KeyF10: ebiten.KeyF10,
	host.KeyF11: ebiten.KeyF11,
	host.KeyF12: ebiten.KeyF12,

	host.KeyLeftShift:    ebiten.KeyShiftLeft,
	host.KeyRightShift:   ebiten.KeyShiftRight,
	host.KeyLeftControl:  ebiten.KeyControlLeft,
	host.KeyRightControl: ebiten.KeyControlRight,
	host.KeyLeftAlt:      ebiten.KeyAltLeft,
	host.KeyRightAlt:     ebiten.KeyAltRight,
	host.KeyLeftCommand:  ebiten.KeyMetaLeft,
	host.KeyRightCommand: ebiten.KeyMetaRight,
	host.KeyLeftWindows:  ebiten.KeyMetaLeft,
	host.KeyRightWindows: ebiten.KeyMetaRight,
}

var cursorShapes = map[host.CursorShape]ebiten.CursorShapeType{
	host.CursorDefault:    ebiten.CursorShapeDefault,
	host.CursorText:       ebiten.CursorShapeText,
	host.CursorCrosshair:  ebiten.CursorShapeCrosshair,
	host.CursorPointer:    ebiten.CursorShapePointer,
	host.CursorEWResize:   ebiten.CursorShapeEWResize,
	host.CursorNSResize:   ebiten.CursorShapeNSResize,
	host.CursorNESWResize: ebiten.CursorShapeNESWResize,
	host.CursorNWSEResize: ebiten.CursorShapeNWSEResize,
	host.CursorMove:       ebiten.CursorShapeMove,
	host.CursorNotAllowed: ebiten.CursorShapeNotAllowed,
}

func cursorShape(shape host.CursorShape) ebiten.CursorShapeType {
	if s, ok := cursorShapes[shape]; ok {
		return s
	}
	return ebiten.CursorShapeDefault
}
