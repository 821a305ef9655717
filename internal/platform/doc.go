// Package platform binds a host's raw input to the GUI's IO object.
//
// A Platform is initialized once and then asked to prepare every frame.
// The InputManager platform polls a host.Input for key, modifier, text,
// mouse and cursor state and writes it into a gui.IO. Frame timing,
// clipboard hooks and cursor shape handling are shared across platforms
// and live in Base, which platforms hold rather than embed.
//
// Frame order in InputManager.PrepareFrame:
//
//  1. Base.PrepareFrame: display size and delta time
//  2. keyboard: mapped keys, then modifier flags
//  3. text: drain the host's text queue
//  4. mouse: position (GUI space), wheel, buttons 0-2
//  5. cursor: sync the host cursor with the GUI's request
//
// KeyMap values are immutable once built. Reloading configuration builds
// a new KeyMap and a new InputManager.
package platform
