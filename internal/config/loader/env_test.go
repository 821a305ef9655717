package loader

import (
	"testing"
)

func testEnvLoader(env ...string) *EnvLoader {
	l := NewEnvLoader(DefaultEnvPrefix)
	l.environ = func() []string { return env }
	return l
}

func TestEnvLoader_Load(t *testing.T) {
	l := testEnvLoader(
		"IMBRIDGE_LOG_LEVEL=debug",
		"IMBRIDGE_HOST=sim",
		"IMBRIDGE_FPS=1",
		"IMBRIDGE_KEY_UP=off",
		"IMBRIDGE_DISPLAY_WIDTH=1024",
		"IMBRIDGE_INPUT_NO_MOUSE_CURSOR_CHANGE=yes",
		"IMBRIDGE_HOST_DEVICES=[\"/dev/input/event2\"]",
		"HOME=/root",
	)

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"logging.level", "debug"},
		{"host.kind", "sim"},
		{"frame.fps", int64(1)},
		{"input.emitKeyUp", false},
		{"display.width", int64(1024)},
		{"input.noMouseCursorChange", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := getByPath(config, tt.path)
			if !ok || got != tt.want {
				t.Errorf("%s = %v (%T), want %v (%T)", tt.path, got, got, tt.want, tt.want)
			}
		})
	}

	devices, ok := getByPath(config, "host.devices")
	if list, isList := devices.([]any); !ok || !isList || len(list) != 1 || list[0] != "/dev/input/event2" {
		t.Errorf("host.devices = %v, want [/dev/input/event2]", devices)
	}
	if _, ok := config["home"]; ok {
		t.Error("unprefixed variables must be ignored")
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	l := testEnvLoader("IMBRIDGE_NAME=kiosk")
	l.AddMapping("IMBRIDGE_NAME", "platform.name")

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v, _ := getByPath(config, "platform.name"); v != "kiosk" {
		t.Errorf("platform.name = %v, want kiosk", v)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix)

	tests := []struct {
		env  string
		want string
	}{
		{"IMBRIDGE_FRAME_FPS", "frame.fps"},
		{"IMBRIDGE_INPUT_EMIT_KEY_UP", "input.emitKeyUp"},
		{"IMBRIDGE_CLIPBOARD_SYSTEM", "clipboard.system"},
		{"IMBRIDGE_PLATFORM", "platform"},
		{"IMBRIDGE_", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := l.envToPath(tt.env); got != tt.want {
				t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"No", false},
		{"0", int64(0)},
		{"60", int64(60)},
		{"0.5", 0.5},
		{"1.2.3", "1.2.3"},
		{"term", "term"},
		{"[broken", "[broken"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseValue(tt.in); got != tt.want {
				t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
			}
		})
	}
}
