package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dshills/imbridge/internal/gui"
	"github.com/dshills/imbridge/internal/host"
	"github.com/dshills/imbridge/internal/platform"
)

// Host kinds accepted by host.kind.
var HostKinds = []string{"term", "evdev", "ebiten", "sim"}

// Log levels accepted by logging.level.
var LogLevels = []string{"debug", "info", "warn", "error", "fatal", "disable"}

const (
	minFPS        = 1
	maxFPS        = 1000
	maxDisplayDim = 16384
)

// Settings is the decoded configuration, one field per section.
type Settings struct {
	Platform  PlatformSettings
	Input     InputSettings
	Cursor    CursorSettings
	Display   DisplaySettings
	Frame     FrameSettings
	Host      HostSettings
	Clipboard ClipboardSettings
	Logging   LoggingSettings
}

// PlatformSettings contains the platform section.
type PlatformSettings struct {
	// Name is reported to the GUI as the backend platform name.
	Name string
}

// InputSettings contains the input section.
type InputSettings struct {
	EmitKeyUp           bool
	NoMouseCursorChange bool
	// ExtraKeys maps host key names to GUI key names, e.g. "F1" = "F1".
	ExtraKeys map[string]string
}

// CursorSettings contains the cursor section.
type CursorSettings struct {
	// Shapes maps GUI cursor names to host cursor shape names.
	Shapes map[string]string
}

// DisplaySettings contains the display section.
type DisplaySettings struct {
	Width  int
	Height int
}

// FrameSettings contains the frame section.
type FrameSettings struct {
	FPS int
}

// Interval returns the time between frames.
func (f FrameSettings) Interval() time.Duration {
	if f.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(f.FPS)
}

// HostSettings contains the host section.
type HostSettings struct {
	Kind string
	// Devices lists evdev device nodes; empty means every event device.
	Devices []string
}

// ClipboardSettings contains the clipboard section.
type ClipboardSettings struct {
	// System uses the OS clipboard instead of an in-process one.
	System bool
}

// LoggingSettings contains the logging section.
type LoggingSettings struct {
	Level string
	File  string
}

// decodeSettings reads every section out of a merged tree and validates it.
func decodeSettings(m map[string]any) (Settings, error) {
	d := decoder{m: m}
	s := Settings{
		Platform: PlatformSettings{
			Name: d.string("platform.name"),
		},
		Input: InputSettings{
			EmitKeyUp:           d.bool("input.emitKeyUp"),
			NoMouseCursorChange: d.bool("input.noMouseCursorChange"),
			ExtraKeys:           d.stringMap("input.extraKeys"),
		},
		Cursor: CursorSettings{
			Shapes: d.stringMap("cursor.shapes"),
		},
		Display: DisplaySettings{
			Width:  d.int("display.width"),
			Height: d.int("display.height"),
		},
		Frame: FrameSettings{
			FPS: d.int("frame.fps"),
		},
		Host: HostSettings{
			Kind:    d.string("host.kind"),
			Devices: d.stringSlice("host.devices"),
		},
		Clipboard: ClipboardSettings{
			System: d.bool("clipboard.system"),
		},
		Logging: LoggingSettings{
			Level: strings.ToLower(d.string("logging.level")),
			File:  d.string("logging.file"),
		},
	}
	if len(d.errs) > 0 {
		return Settings{}, errors.Join(d.errs...)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// decoder collects type errors so one pass reports all of them.
// Missing settings decode to zero values.
type decoder struct {
	m    map[string]any
	errs []error
}

func (d *decoder) record(err error) {
	if err == nil || errors.Is(err, ErrSettingNotFound) {
		return
	}
	var te *TypeError
	if errors.As(err, &te) {
		err = &ValidationError{Path: te.Path, Message: "expected " + te.Expected, Value: te.Actual, Code: ErrCodeTypeMismatch}
	}
	d.errs = append(d.errs, err)
}

func (d *decoder) string(path string) string {
	v, err := getString(d.m, path)
	d.record(err)
	return v
}

func (d *decoder) int(path string) int {
	v, err := getInt(d.m, path)
	d.record(err)
	return v
}

func (d *decoder) bool(path string) bool {
	v, err := getBool(d.m, path)
	d.record(err)
	return v
}

func (d *decoder) stringSlice(path string) []string {
	v, err := getStringSlice(d.m, path)
	d.record(err)
	return v
}

func (d *decoder) stringMap(path string) map[string]string {
	v, err := getStringMap(d.m, path)
	d.record(err)
	return v
}

// Validate checks ranges, enums and key and cursor names.
// All failures are returned joined.
func (s Settings) Validate() error {
	var errs []error
	fail := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if strings.TrimSpace(s.Platform.Name) == "" {
		fail("platform.name", "must not be empty", s.Platform.Name, ErrCodeRequiredMissing)
	}
	if s.Frame.FPS < minFPS || s.Frame.FPS > maxFPS {
		fail("frame.fps", fmt.Sprintf("must be between %d and %d", minFPS, maxFPS), s.Frame.FPS, ErrCodeOutOfRange)
	}
	if s.Display.Width <= 0 || s.Display.Width > maxDisplayDim {
		fail("display.width", fmt.Sprintf("must be between 1 and %d", maxDisplayDim), s.Display.Width, ErrCodeOutOfRange)
	}
	if s.Display.Height <= 0 || s.Display.Height > maxDisplayDim {
		fail("display.height", fmt.Sprintf("must be between 1 and %d", maxDisplayDim), s.Display.Height, ErrCodeOutOfRange)
	}
	if !slices.Contains(HostKinds, s.Host.Kind) {
		fail("host.kind", "must be one of "+strings.Join(HostKinds, ", "), s.Host.Kind, ErrCodeInvalidEnum)
	}
	if !slices.Contains(LogLevels, s.Logging.Level) {
		fail("logging.level", "must be one of "+strings.Join(LogLevels, ", "), s.Logging.Level, ErrCodeInvalidEnum)
	}

	for _, physical := range sortedKeys(s.Input.ExtraKeys) {
		logical := s.Input.ExtraKeys[physical]
		path := "input.extraKeys." + physical
		if host.KeyCodeFromName(physical) == host.KeyCodeNone {
			fail(path, "unknown host key", physical, ErrCodeUnknownName)
		}
		if gui.KeyFromName(logical) == gui.KeyNone {
			fail(path, "unknown gui key", logical, ErrCodeUnknownName)
		}
	}

	for _, name := range sortedKeys(s.Cursor.Shapes) {
		shape := s.Cursor.Shapes[name]
		path := "cursor.shapes." + name
		if c, ok := gui.MouseCursorFromName(name); !ok || c == gui.MouseCursorNone {
			fail(path, "unknown gui cursor", name, ErrCodeUnknownName)
		}
		if _, ok := host.CursorShapeFromName(shape); !ok {
			fail(path, "unknown cursor shape", shape, ErrCodeUnknownName)
		}
	}

	return errors.Join(errs...)
}

// PlatformConfig converts the input and cursor sections into the
// platform's configuration. Names are assumed validated.
func (s Settings) PlatformConfig() platform.Config {
	cfg := platform.DefaultConfig()
	cfg.EmitKeyUp = s.Input.EmitKeyUp
	cfg.NoMouseCursorChange = s.Input.NoMouseCursorChange

	if len(s.Input.ExtraKeys) > 0 {
		cfg.ExtraKeys = make(map[host.KeyCode]gui.Key, len(s.Input.ExtraKeys))
		for physical, logical := range s.Input.ExtraKeys {
			cfg.ExtraKeys[host.KeyCodeFromName(physical)] = gui.KeyFromName(logical)
		}
	}

	if len(s.Cursor.Shapes) > 0 {
		cfg.CursorShapes = make(map[gui.MouseCursor]host.CursorShape, len(s.Cursor.Shapes))
		for name, shape := range s.Cursor.Shapes {
			c, _ := gui.MouseCursorFromName(name)
			hs, _ := host.CursorShapeFromName(shape)
			cfg.CursorShapes[c] = hs
		}
	}

	return cfg
}

func (s Settings) clone() Settings {
	s.Input.ExtraKeys = maps.Clone(s.Input.ExtraKeys)
	s.Cursor.Shapes = maps.Clone(s.Cursor.Shapes)
	s.Host.Devices = slices.Clone(s.Host.Devices)
	return s
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
