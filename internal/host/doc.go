// Package host defines the contract between platform backends and the
// engine or device layer that owns raw input.
//
// A host answers per-frame queries: is a physical key down, is a mouse
// button down, where is the mouse, how far did the wheel move. It also
// owns a queue of pending text events that the platform drains once per
// frame, and it accepts cursor shape and visibility changes.
//
// Implementations live in subpackages: sim (in-memory, scriptable),
// term (tcell), ebiten (Ebitengine) and evdev (Linux input devices).
package host
