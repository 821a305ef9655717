// Package gui holds the immediate-mode GUI's per-frame input/output state.
//
// The IO type is the object platform backends write into once per frame:
// key events keyed by logical Key, the four modifier flags, queued input
// characters, mouse position, wheel deltas and button state. The GUI side
// reads it back and publishes the mouse cursor it wants for the frame.
//
// Key identifiers here are logical. They say what a key means to the GUI
// (Enter, Tab, A for select-all) and are independent of any host's
// physical key codes.
package gui
