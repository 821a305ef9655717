package platform

import (
	"errors"
	"fmt"
	"time"

	"github.com/kataras/golog"

	"github.com/dshills/imbridge/internal/gui"
	"github.com/dshills/imbridge/internal/host"
)

// ErrUnknownPlatform is returned by New for an unrecognized Kind.
var ErrUnknownPlatform = errors.New("unknown platform")

// Platform is the contract every platform backend implements.
type Platform interface {
	// Initialize prepares io for use with this platform and reports
	// whether the platform is ready.
	Initialize(io *gui.IO, cfg Config, platformName string) bool

	// PrepareFrame writes this frame's input state into io.
	PrepareFrame(io *gui.IO, displayRect Rect)

	// Shutdown detaches the platform from io.
	Shutdown(io *gui.IO)
}

// Kind names a platform implementation.
type Kind string

const (
	// KindInputManager polls a host.Input every frame.
	KindInputManager Kind = "input-manager"
)

// New creates the platform named by kind over h.
func New(kind Kind, h host.Host, opts ...Option) (Platform, error) {
	switch kind {
	case KindInputManager, "":
		return NewInputManager(h, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, kind)
	}
}

// Rect is the display rectangle handed to PrepareFrame, in pixels.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// RectFromSize returns a Rect at the origin with the given size.
func RectFromSize(width, height int) Rect {
	return Rect{Width: float32(width), Height: float32(height)}
}

// Config holds the settings platforms read at Initialize.
type Config struct {
	// EmitKeyUp reports key releases as explicit key-up events.
	// When false only key-down events are ever reported.
	EmitKeyUp bool

	// NoMouseCursorChange leaves the host cursor untouched.
	NoMouseCursorChange bool

	// ExtraKeys adds or overrides entries in the default key map.
	ExtraKeys map[host.KeyCode]gui.Key

	// CursorShapes overrides entries in the default cursor table.
	CursorShapes map[gui.MouseCursor]host.CursorShape
}

// DefaultConfig returns the default platform configuration.
func DefaultConfig() Config {
	return Config{
		EmitKeyUp: true,
	}
}

type options struct {
	logger    *golog.Logger
	now       func() time.Time
	clipboard Clipboard
}

// Option configures a platform.
type Option func(*options)

// WithLogger sets the logger. The platform logs through a child logger.
func WithLogger(l *golog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock sets the time source used for DeltaTime.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithClipboard sets the clipboard backing the IO clipboard hooks.
func WithClipboard(c Clipboard) Option {
	return func(o *options) {
		if c != nil {
			o.clipboard = c
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: golog.Default,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clipboard == nil {
		o.clipboard = NewMemoryClipboard()
	}
	return o
}
